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

// In this file: workspace message search.

import (
	"context"
	"strings"

	"github.com/rusq/slack"
)

const (
	// DefSearchCount is the number of search results returned by
	// SearchMessages when the caller does not specify a count.
	DefSearchCount = 20

	minSearchCount = 1
	maxSearchCount = 100
)

// SearchMessages searches the workspace messages with the Slack search query
// syntax (e.g. "deploy in:#general").  count is clamped into [1, 100].
// Search requires a user token; with a bot token Slack denies the call, and
// the denial is returned as a normalised not-authorized error.
func (s *Session) SearchMessages(ctx context.Context, query string, count int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &Error{Kind: KindInvalidArgument, Msg: "search query is empty"}
	}
	count = max(min(count, maxSearchCount), minSearchCount)
	if err := s.limiter(Tier2).Wait(ctx); err != nil {
		return nil, normalize(err)
	}
	params := slack.NewSearchParameters()
	params.Count = count
	sm, err := s.client.SearchMessagesContext(ctx, query, params)
	if err != nil {
		return nil, normalize(err)
	}
	hits := make([]SearchHit, 0, len(sm.Matches))
	for i := range sm.Matches {
		hits = append(hits, newSearchHit(&sm.Matches[i]))
	}
	s.lg.DebugContext(ctx, "search complete", "query", query, "hits", len(hits))
	return hits, nil
}
