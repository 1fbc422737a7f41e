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

// In this file: channel reference resolution.

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// chanIDRe matches canonical conversation IDs: public and private channels
// (C), direct messages (D) and group conversations (G).
var chanIDRe = regexp.MustCompile(`^[CDG][A-Z0-9]{7,}$`)

// IsChannelID reports whether s is syntactically a canonical conversation
// ID.
func IsChannelID(s string) bool {
	return chanIDRe.MatchString(s)
}

// ResolveChannel resolves a channel reference, which may be a canonical ID,
// a channel name, or a "#name", to the channel ID.  IDs are returned
// unchanged without any API calls.  Names are matched exactly and case
// sensitively against the channel directory, a leading "#" is stripped
// before matching.  An unknown name returns a channel-not-found error.
func (s *Session) ResolveChannel(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &Error{Kind: KindInvalidArgument, Msg: "channel reference is empty"}
	}
	if IsChannelID(ref) {
		return ref, nil
	}
	name := strings.TrimPrefix(ref, "#")
	channels, err := s.Channels(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range channels {
		if c.Name == name {
			return c.ID, nil
		}
	}
	return "", &Error{Kind: KindChannelNotFound, Msg: fmt.Sprintf("channel %q not found", ref)}
}
