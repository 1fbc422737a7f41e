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

// In this file: the posting allowlist.

import "strings"

// Allowlist is the set of channels that SendMessage is permitted to post to.
// It is built once at startup and never mutated afterwards.  An empty (or
// nil) allowlist permits every destination.
//
// Tokens are channel IDs or channel names; a leading "#" on a name is
// insignificant, "#general" and "general" denote the same channel.  Name
// matching is case sensitive, same as the channel name resolution.
type Allowlist struct {
	index map[string]struct{}
}

// ParseAllowlist builds an Allowlist from a comma-separated list of channel
// names and IDs.  Tokens are trimmed of surrounding whitespace, and empty
// tokens are dropped, so "a,,b" and " a , b " produce the same set.
func ParseAllowlist(s string) *Allowlist {
	al := &Allowlist{index: make(map[string]struct{})}
	for tok := range strings.SplitSeq(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		al.index[strings.TrimPrefix(tok, "#")] = struct{}{}
	}
	return al
}

// Unrestricted reports whether the allowlist permits every destination.
func (al *Allowlist) Unrestricted() bool {
	return al == nil || len(al.index) == 0
}

// Allows reports whether any of the given channel references is a permitted
// destination.  Callers pass all known forms of the destination (the raw
// reference and the resolved ID), so that the allowlist may be configured
// with either.
func (al *Allowlist) Allows(refs ...string) bool {
	if al.Unrestricted() {
		return true
	}
	for _, ref := range refs {
		if _, ok := al.index[strings.TrimPrefix(ref, "#")]; ok {
			return true
		}
	}
	return false
}
