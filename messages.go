// Copyright (c) 2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package slackmcp

// In this file: message reading and posting.

import (
	"context"
	"fmt"
	"strings"

	"github.com/rusq/slack"
)

const (
	// DefMsgLimit is the number of messages returned by Messages when the
	// caller does not specify a limit.
	DefMsgLimit = 100
	// DefThreadLimit is the number of messages returned by ThreadMessages
	// when the caller does not specify a limit.
	DefThreadLimit = 20

	minMsgLimit = 1
	maxMsgLimit = 1000
)

// Messages returns up to limit most recent messages of the channel, in the
// order received from the API (most recent first).  Thread replies other
// than the thread parent are not included, use ThreadMessages for those.
// limit is clamped into [1, 1000] before any request is made.
func (s *Session) Messages(ctx context.Context, ref string, limit int) ([]Message, error) {
	limit = max(min(limit, maxMsgLimit), minMsgLimit) // ensure within bounds
	id, err := s.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}
	lim := s.limiter(Tier3)
	fetch := func(ctx context.Context, cursor string) ([]slack.Message, string, error) {
		if err := lim.Wait(ctx); err != nil {
			return nil, "", normalize(err)
		}
		resp, err := s.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: id,
			Cursor:    cursor,
			Limit:     min(limit, s.cfg.limits.Request.Conversations),
		})
		if err != nil {
			return nil, "", refErr(ref, err)
		}
		if !resp.Ok {
			return nil, "", refErr(ref, slack.SlackErrorResponse{Err: resp.Error})
		}
		return resp.Messages, resp.ResponseMetaData.NextCursor, nil
	}
	msgs, err := drainPages(ctx, limit, fetch)
	if err != nil {
		return nil, err
	}
	s.lg.DebugContext(ctx, "messages fetched", "channel", id, "count", len(msgs))
	return newMessages(msgs), nil
}

// ThreadMessages returns up to limit messages of the thread identified by
// the parent timestamp threadTS, starting with the parent itself, in the
// order received from the API.  limit is clamped into [1, 1000] before any
// request is made.
func (s *Session) ThreadMessages(ctx context.Context, ref, threadTS string, limit int) ([]Message, error) {
	threadTS = strings.TrimSpace(threadTS)
	if threadTS == "" {
		return nil, &Error{Kind: KindInvalidArgument, Msg: "thread timestamp is empty"}
	}
	limit = max(min(limit, maxMsgLimit), minMsgLimit)
	id, err := s.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}
	lim := s.limiter(Tier3)
	fetch := func(ctx context.Context, cursor string) ([]slack.Message, string, error) {
		if err := lim.Wait(ctx); err != nil {
			return nil, "", normalize(err)
		}
		msgs, _, next, err := s.client.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
			ChannelID: id,
			Timestamp: threadTS,
			Cursor:    cursor,
			Limit:     min(limit, s.cfg.limits.Request.Replies),
		})
		if err != nil {
			return nil, "", refErr(ref, err)
		}
		return msgs, next, nil
	}
	msgs, err := drainPages(ctx, limit, fetch)
	if err != nil {
		return nil, err
	}
	return newMessages(msgs), nil
}

// SendMessage posts text to the channel referenced by ref.  The destination
// is resolved first, then checked against the allowlist; when the check
// fails no posting API call is made, and the returned error names only the
// rejected destination.
func (s *Session) SendMessage(ctx context.Context, ref, text string) (*PostReceipt, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Kind: KindInvalidArgument, Msg: "message text is empty"}
	}
	id, err := s.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !s.cfg.allow.Allows(ref, id) {
		return nil, &Error{Kind: KindNotAllowlisted, Msg: fmt.Sprintf("channel %q is not an allowed destination", ref)}
	}
	if err := s.limiter(Tier3).Wait(ctx); err != nil {
		return nil, normalize(err)
	}
	channel, ts, err := s.client.PostMessageContext(ctx, id, slack.MsgOptionText(text, false))
	if err != nil {
		return nil, refErr(ref, err)
	}
	s.lg.InfoContext(ctx, "message posted", "channel", channel, "ts", ts)
	return &PostReceipt{
		OK:        true,
		Channel:   channel,
		Timestamp: ts,
		Message:   Message{Timestamp: ts, User: s.CurrentUserID(), Text: text},
	}, nil
}
