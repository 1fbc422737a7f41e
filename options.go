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

// In this file: Session options.

import "log/slog"

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLogger sets the logger to use for the session.  If this option is not
// given, the session logs with slog.Default.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Session) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// WithLimits sets the API limits to use for the session.  If this option is
// not given, DefLimits is used.  The limits are validated in New, invalid
// limits abort the initialisation with ErrLimits.
func WithLimits(l Limits) Option {
	return func(s *Session) {
		s.cfg.limits = l
	}
}

// WithAllowlist sets the posting allowlist for the session.  If this option
// is not given, or al is nil, posting is unrestricted.
func WithAllowlist(al *Allowlist) Option {
	return func(s *Session) {
		s.cfg.allow = al
	}
}

// WithSlackClient sets the Slack client to use for the session.  When it is
// given, New does not construct a client, and the token argument is unused.
func WithSlackClient(cl Slacker) Option {
	return func(s *Session) {
		if cl != nil {
			s.client = cl
		}
	}
}
