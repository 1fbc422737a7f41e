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

// In this file: session config and token validation.

import (
	"errors"
	"regexp"
)

// config is the Session parameter set, populated by options.
type config struct {
	limits Limits
	allow  *Allowlist // nil means unrestricted posting
}

// defConfig is the default configuration used when initialising the Session.
var defConfig = config{
	limits: DefLimits,
}

// tokenRE is a loose regular expression to match Slack API tokens.
// a - app, b - bot, c - client, e - export, p - legacy
var tokenRE = regexp.MustCompile(`xox[abcep]-[0-9]+-[0-9]+-[0-9]+-[0-9a-f]{64}`)

// ErrInvalidToken is returned by ValidateToken when the token does not have
// the expected shape.
var ErrInvalidToken = errors.New("token must start with xoxa-, xoxb-, xoxc-, xoxe- or xoxp- and be followed by 3 group of numbers and then 64 hexadecimal characters")

// ValidateToken checks the Slack token shape without calling the API.  It
// catches misconfiguration at startup instead of at the first API call.
func ValidateToken(token string) error {
	if !tokenRE.MatchString(token) {
		return ErrInvalidToken
	}
	return nil
}
