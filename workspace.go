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

// In this file: the interface consumed by the MCP tool layer.

import "context"

//go:generate mockgen -destination internal/mcp/workspacer_mock_test.go -package mcp -mock_names Workspacer=mockWorkspacer github.com/rusq/slackmcp Workspacer

// Workspacer is the set of Session operations that the MCP tool layer
// consumes.  Session implements it; tests substitute a mock.
type Workspacer interface {
	// Channels returns all channels of the workspace.
	Channels(ctx context.Context) ([]Channel, error)
	// ChannelInfo returns the details of a single channel by its canonical
	// ID.  Names are not resolved for this lookup.
	ChannelInfo(ctx context.Context, id string) (*Channel, error)
	// Users returns the workspace user directory.
	Users(ctx context.Context) ([]User, error)
	// UserInfo returns the details of a single user by ID.
	UserInfo(ctx context.Context, userID string) (*User, error)
	// Messages returns up to limit most recent messages of the channel.
	Messages(ctx context.Context, ref string, limit int) ([]Message, error)
	// ThreadMessages returns up to limit messages of a single thread,
	// starting with the thread parent.
	ThreadMessages(ctx context.Context, ref, threadTS string, limit int) ([]Message, error)
	// SendMessage posts text to the channel, subject to the allowlist.
	SendMessage(ctx context.Context, ref, text string) (*PostReceipt, error)
	// SearchMessages searches the workspace messages.
	SearchMessages(ctx context.Context, query string, count int) ([]SearchHit, error)
	// WorkspaceInfo returns the workspace identity.  It involves no API
	// call, the identity is captured during initialisation.
	WorkspaceInfo() *WorkspaceInfo
}

var _ Workspacer = (*Session)(nil)
