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

// Package slackmcp is the mediation layer between assistant tool calls and a
// live Slack workspace.  It resolves human channel references to canonical
// IDs, enforces the posting allowlist, drains paginated listings, and folds
// every Slack API failure into a small closed set of error kinds, so that the
// tool surface (internal/mcp) never has to interpret raw API responses.
package slackmcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"github.com/go-playground/validator/v10"
	"github.com/rusq/slack"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source slackmcp.go -destination slacker_mock_test.go -package slackmcp -mock_names Slacker=mockSlacker

// Session is a connection to a single Slack workspace.  Zero value is not
// usable, initialise with New.  Session is safe for concurrent use.
type Session struct {
	client Slacker      // Slack client
	lg     *slog.Logger // logger

	wspInfo *WorkspaceInfo // workspace info, captured by the auth probe

	cfg config
}

// Slacker is the subset of slack.Client methods the Session depends on.
type Slacker interface {
	AuthTestContext(ctx context.Context) (response *slack.AuthTestResponse, err error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) (channels []slack.Channel, nextCursor string, err error)
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) (msgs []slack.Message, hasMore bool, nextCursor string, err error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
	SearchMessagesContext(ctx context.Context, query string, params slack.SearchParameters) (*slack.SearchMessages, error)
}

// New creates a new Session for the workspace that the token belongs to, and
// runs the authentication probe on it.  If the probe fails, AuthError is
// returned.
func New(ctx context.Context, token string, opts ...Option) (*Session, error) {
	ctx, task := trace.NewTask(ctx, "New")
	defer task.End()

	s := &Session{
		cfg: defConfig,
		lg:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.limits.Validate(); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("%w: %s", ErrLimits, vErr.Translate(LimitsErrTranslations))
		}
		return nil, err
	}
	if s.client == nil {
		if err := ValidateToken(token); err != nil {
			return nil, err
		}
		s.client = slack.New(token)
	}

	wi, err := s.client.AuthTestContext(ctx)
	if err != nil {
		return nil, &AuthError{Err: err}
	}
	s.wspInfo = newWorkspaceInfo(wi)
	s.lg.DebugContext(ctx, "authenticated", "team", wi.Team, "user", wi.User)

	return s, nil
}

// WorkspaceInfo returns the workspace information captured during the
// authentication probe.  No API call is involved.
func (s *Session) WorkspaceInfo() *WorkspaceInfo {
	return s.wspInfo
}

// CurrentUserID returns the user ID of the authenticated user.
func (s *Session) CurrentUserID() string {
	if s.wspInfo == nil {
		return ""
	}
	return s.wspInfo.UserID
}

func (s *Session) limiter(t Tier) *rate.Limiter {
	var tl TierLimit
	switch t {
	case Tier2:
		tl = s.cfg.limits.Tier2
	case Tier3:
		tl = s.cfg.limits.Tier3
	case Tier4:
		tl = s.cfg.limits.Tier4
	default:
		t, tl = Tier3, s.cfg.limits.Tier3
	}
	return newLimiter(t, tl.Burst, int(tl.Boost))
}
