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

// In this file: channel listing and channel info.

import (
	"context"
	"strings"

	"github.com/rusq/slack"
)

// defChanTypes is the conversation types returned by Channels.  Group and
// direct conversations are deliberately not listed: the server mediates
// channel traffic only.
var defChanTypes = []string{"public_channel", "private_channel"}

// maxDirectory caps the channel and user directory drains.  50 pages of 200
// is the documented safety bound carried over from the v1 paginated
// fetchers.
const maxDirectory = 10000

// Channels returns all non-archived public and private channels of the
// workspace.  The listing is drained to completion (subject to the
// directory cap), so the caller never deals with cursors.
func (s *Session) Channels(ctx context.Context) ([]Channel, error) {
	lim := s.limiter(Tier2)
	fetch := func(ctx context.Context, cursor string) ([]slack.Channel, string, error) {
		if err := lim.Wait(ctx); err != nil {
			return nil, "", normalize(err)
		}
		chans, next, err := s.client.GetConversationsContext(ctx, &slack.GetConversationsParameters{
			Cursor:          cursor,
			Limit:           s.cfg.limits.Request.Channels,
			Types:           defChanTypes,
			ExcludeArchived: true,
		})
		if err != nil {
			return nil, "", normalize(err)
		}
		return chans, next, nil
	}
	chans, err := drainPages(ctx, maxDirectory, fetch)
	if err != nil {
		return nil, err
	}
	out := make([]Channel, 0, len(chans))
	for i := range chans {
		out = append(out, newChannel(&chans[i]))
	}
	s.lg.DebugContext(ctx, "channels listed", "count", len(out))
	return out, nil
}

// ChannelInfo returns the details of a single channel.  id must be a
// canonical channel ID, names are not resolved for this lookup
// (conversations.info does not accept them).
func (s *Session) ChannelInfo(ctx context.Context, id string) (*Channel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &Error{Kind: KindInvalidArgument, Msg: "channel id is empty"}
	}
	if err := s.limiter(Tier3).Wait(ctx); err != nil {
		return nil, normalize(err)
	}
	ch, err := s.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID:         id,
		IncludeNumMembers: true,
	})
	if err != nil {
		return nil, refErr(id, err)
	}
	info := newChannelInfo(ch)
	return &info, nil
}
