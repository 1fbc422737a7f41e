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

// In this file: the error taxonomy and the Slack API error normaliser.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	"github.com/rusq/slack"
)

// Kind classifies operation failures.  The set is closed: every error
// returned by Session operations carries exactly one of these kinds.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindChannelNotFound Kind = "channel_not_found"
	KindUserNotFound    Kind = "user_not_found"
	KindNotAllowlisted  Kind = "not_allowlisted"
	KindNotAuthorized   Kind = "not_authorized"
	KindRateLimited     Kind = "rate_limited"
	KindUnavailable     Kind = "upstream_unavailable"
	KindProtocol        Kind = "upstream_protocol_error"
)

// Error is the normalised error returned by all Session operations.  Msg is
// safe to show to the tool caller: it never carries raw response bodies,
// URLs or credentials.  The underlying cause is reachable with errors.Unwrap
// but is not rendered.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// AuthError is the error returned by New, the underlying Err contains an API
// error returned by the auth.test call.
type AuthError struct {
	Err error
}

func (ae *AuthError) Error() string {
	return fmt.Sprintf("failed to authenticate: %s", ae.Err)
}

func (ae *AuthError) Unwrap() error {
	return ae.Err
}

func (ae *AuthError) Is(target error) bool {
	return target == ae.Err
}

// slackCodes maps Slack API error codes to error kinds.  Codes not listed
// here are surfaced as KindProtocol with the code preserved in the message.
var slackCodes = map[string]Kind{
	"channel_not_found": KindChannelNotFound,

	"user_not_found":   KindUserNotFound,
	"user_not_visible": KindUserNotFound,

	"invalid_auth":           KindNotAuthorized,
	"not_authed":             KindNotAuthorized,
	"account_inactive":       KindNotAuthorized,
	"token_revoked":          KindNotAuthorized,
	"token_expired":          KindNotAuthorized,
	"no_permission":          KindNotAuthorized,
	"missing_scope":          KindNotAuthorized,
	"not_allowed_token_type": KindNotAuthorized,
	"ekm_access_denied":      KindNotAuthorized,
	"access_denied":          KindNotAuthorized,
	"not_in_channel":         KindNotAuthorized,
	"restricted_action":      KindNotAuthorized,

	"invalid_arguments": KindInvalidArgument,
	"invalid_args":      KindInvalidArgument,
	"invalid_arg_name":  KindInvalidArgument,
	"invalid_limit":     KindInvalidArgument,
	"invalid_cursor":    KindInvalidArgument,
	"invalid_ts_oldest": KindInvalidArgument,
	"invalid_ts_latest": KindInvalidArgument,
	"msg_too_long":      KindInvalidArgument,
	"no_text":           KindInvalidArgument,
	"is_archived":       KindInvalidArgument,
	"thread_not_found":  KindInvalidArgument,
	"message_not_found": KindInvalidArgument,
	"not_supported_uri": KindInvalidArgument,
	"method_deprecated": KindInvalidArgument,

	"ratelimited":       KindRateLimited,
	"rate_limited":      KindRateLimited,
	"too_many_requests": KindRateLimited,

	"internal_error":      KindUnavailable,
	"service_unavailable": KindUnavailable,
	"fatal_error":         KindUnavailable,
	"request_timeout":     KindUnavailable,
	"team_added_to_org":   KindUnavailable,
}

// normalize converts an arbitrary error returned by the Slack client into
// *Error.  It is idempotent: an already normalised error is returned as is.
// nil maps to nil.
func normalize(err error) *Error {
	if err == nil {
		return nil
	}
	var ne *Error
	if errors.As(err, &ne) {
		return ne
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindUnavailable, Msg: "operation cancelled", Err: err}
	}
	var rle *slack.RateLimitedError
	if errors.As(err, &rle) {
		return &Error{
			Kind: KindRateLimited,
			Msg:  fmt.Sprintf("rate limited, retry after %s", rle.RetryAfter),
			Err:  err,
		}
	}
	var ser slack.SlackErrorResponse
	if errors.As(err, &ser) {
		return codeErr(ser.Err, err)
	}
	var sce slack.StatusCodeError
	if errors.As(err, &sce) {
		return statusErr(sce)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return &Error{Kind: KindUnavailable, Msg: "slack api is unreachable", Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return &Error{Kind: KindUnavailable, Msg: "slack api is unreachable", Err: err}
	}
	var (
		jse *json.SyntaxError
		jte *json.UnmarshalTypeError
	)
	if errors.As(err, &jse) || errors.As(err, &jte) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{Kind: KindProtocol, Msg: "malformed response from slack", Err: err}
	}
	return &Error{Kind: KindProtocol, Msg: "unexpected error talking to slack", Err: err}
}

// codeErr maps a Slack API error code to *Error with a message derived from
// the code itself.
func codeErr(code string, cause error) *Error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return &Error{Kind: KindProtocol, Msg: "slack response is not ok", Err: cause}
	}
	kind, ok := slackCodes[code]
	if !ok {
		return &Error{Kind: KindProtocol, Msg: fmt.Sprintf("unexpected slack error: %q", code), Err: cause}
	}
	var msg string
	switch kind {
	case KindChannelNotFound:
		msg = "channel not found"
	case KindUserNotFound:
		msg = "user not found"
	case KindNotAuthorized:
		msg = "not authorized: " + code
	case KindInvalidArgument:
		msg = "invalid argument: " + code
	case KindRateLimited:
		msg = "rate limited"
	case KindUnavailable:
		msg = "slack reported a server problem: " + code
	default:
		msg = code
	}
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// statusErr maps a non-200 HTTP status to *Error.
func statusErr(sce slack.StatusCodeError) *Error {
	switch {
	case sce.Code == 401 || sce.Code == 403:
		return &Error{Kind: KindNotAuthorized, Msg: fmt.Sprintf("not authorized (http %d)", sce.Code), Err: sce}
	case sce.Code == 429:
		return &Error{Kind: KindRateLimited, Msg: "rate limited", Err: sce}
	case sce.Code == 408 || sce.Code >= 500:
		return &Error{Kind: KindUnavailable, Msg: fmt.Sprintf("slack is unavailable (http %d)", sce.Code), Err: sce}
	default:
		return &Error{Kind: KindProtocol, Msg: fmt.Sprintf("unexpected http status %d", sce.Code), Err: sce}
	}
}

// refErr normalises err and, for not-found kinds, names the offending
// reference in the message.  The rename is applied to a copy: normalize
// passes through an input that is already an *Error, and that one may be
// shared.
func refErr(ref string, err error) *Error {
	ne := *normalize(err)
	switch ne.Kind {
	case KindChannelNotFound:
		ne.Msg = fmt.Sprintf("channel %q not found", ref)
	case KindUserNotFound:
		ne.Msg = fmt.Sprintf("user %q not found", ref)
	}
	return &ne
}
