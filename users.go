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

// In this file: user related code.

import (
	"context"
	"strings"
)

// Users returns the workspace user directory.  The client drains the
// users.list pagination internally, the result is capped at the directory
// cap.
func (s *Session) Users(ctx context.Context) ([]User, error) {
	if err := s.limiter(Tier2).Wait(ctx); err != nil {
		return nil, normalize(err)
	}
	users, err := s.client.GetUsersContext(ctx)
	if err != nil {
		return nil, normalize(err)
	}
	// Every workspace has at least slackbot.  An empty listing means the
	// client swallowed an error (invalid_auth is known to not propagate).
	if len(users) == 0 {
		return nil, &Error{Kind: KindProtocol, Msg: "user listing is empty"}
	}
	if len(users) > maxDirectory {
		users = users[:maxDirectory]
	}
	out := make([]User, 0, len(users))
	for i := range users {
		out = append(out, newUser(&users[i]))
	}
	s.lg.DebugContext(ctx, "users listed", "count", len(out))
	return out, nil
}

// UserInfo returns the details of a single user.  Users are identified by
// ID only, names are not resolved.
func (s *Session) UserInfo(ctx context.Context, userID string) (*User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &Error{Kind: KindInvalidArgument, Msg: "user id is empty"}
	}
	if err := s.limiter(Tier4).Wait(ctx); err != nil {
		return nil, normalize(err)
	}
	u, err := s.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, refErr(userID, err)
	}
	info := newUserInfo(u)
	return &info, nil
}
