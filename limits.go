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

// In this file: Slack API tiers and request limits.

import (
	"errors"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/time/rate"
)

// ErrLimits is returned by New if the session limits fail validation.
var ErrLimits = errors.New("API limits failed validation")

// Tier represents rate limit Tier:
// https://api.slack.com/docs/rate-limits
type Tier int

const (
	// base throttling defined in events per minute
	Tier2 Tier = 20
	Tier3 Tier = 50
	Tier4 Tier = 100
)

// TierLimit is the limit parameters for a single API tier.
type TierLimit struct {
	// Burst is the allowed burst size, must be at least 1.
	Burst uint `validate:"gte=1"`
	// Boost is added to the tier's base events per minute rate.
	Boost uint
}

// RequestLimit sets the number of items requested per listing API call.
type RequestLimit struct {
	// Channels is the page size for conversations.list.
	Channels int `validate:"gt=0,lte=1000"`
	// Conversations is the page size for conversations.history.
	Conversations int `validate:"gt=0,lte=1000"`
	// Replies is the page size for conversations.replies.
	Replies int `validate:"gt=0,lte=1000"`
}

// Limits contains the per-tier and per-request API limits.
type Limits struct {
	// Tier2 limits conversations.list and search calls.
	Tier2 TierLimit `validate:"required"`
	// Tier3 limits conversation history, replies and posting calls.
	Tier3 TierLimit `validate:"required"`
	// Tier4 limits users.info calls.
	Tier4 TierLimit `validate:"required"`
	// Request is the per-request page sizes.
	Request RequestLimit `validate:"required"`
}

// DefLimits are the default API limits, matching the documented Slack tier
// rates with no boost.
var DefLimits = Limits{
	Tier2:   TierLimit{Burst: 1},
	Tier3:   TierLimit{Burst: 1},
	Tier4:   TierLimit{Burst: 1},
	Request: RequestLimit{Channels: 200, Conversations: 100, Replies: 200},
}

var (
	validate = validator.New()
	// LimitsErrTranslations translates the validator errors returned by
	// Limits.Validate into english.
	LimitsErrTranslations ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	var ok bool
	LimitsErrTranslations, ok = uni.GetTranslator("en")
	if !ok {
		panic("internal error: translator not found")
	}
	if err := entranslations.RegisterDefaultTranslations(validate, LimitsErrTranslations); err != nil {
		panic(err)
	}
}

// Validate checks the limit values, returning validator errors if any of them
// is out of range.
func (l *Limits) Validate() error {
	return validate.Struct(l)
}

// newLimiter returns a throttler with the tier's requests per minute rate.
// Optionally the caller may specify the boost.
func newLimiter(t Tier, burst uint, boost int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(every(t, boost)), int(burst))
}

func every(t Tier, boost int) time.Duration {
	// a negative boost cannot push the rate below one event per minute
	evtPerMin := int(t) + boost
	if evtPerMin < 1 {
		evtPerMin = 1
	}
	return time.Minute / time.Duration(evtPerMin)
}
