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

// In this file: the cursor pagination drainer.

import "context"

// fetchFunc requests a single page of a cursor-paginated listing.  It
// returns the page items, the cursor of the next page (empty when the
// listing is exhausted), and an error.  Implementations are expected to
// return normalised errors.
type fetchFunc[T any] func(ctx context.Context, cursor string) ([]T, string, error)

// drainPages consumes a cursor-paginated listing into a single ordered
// slice.  The first page is requested with an empty cursor.  The drain stops
// when the next cursor is empty, or once limit items are accumulated, in
// which case the result is truncated to exactly limit.  limit <= 0 means no
// limit.
//
// A page fetch error discards everything accumulated so far and is returned
// as the only result.  A repeated cursor is treated as the end of the
// listing, so that a misbehaving endpoint cannot loop the drain forever.
func drainPages[T any](ctx context.Context, limit int, fetch fetchFunc[T]) ([]T, error) {
	var (
		all    []T
		cursor string
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, normalize(err)
		}
		items, next, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if limit > 0 && len(all) >= limit {
			return all[:limit], nil
		}
		if next == "" || next == cursor {
			return all, nil
		}
		cursor = next
	}
}
