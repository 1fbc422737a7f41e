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

package mcp

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/slackmcp"
)

// ─── list_channels ────────────────────────────────────────────────────────────

func (s *Server) toolListChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_channels",
		mcplib.WithDescription(`List all non-archived channels (public and private) of the workspace.
Returns channel IDs, names and visibility.  Use get_channel_info for the
topic, purpose and member count of a single channel.`),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListChannels}
}

func (s *Server) handleListChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channels, err := s.ws.Channels(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: %w", err)), nil
	}

	result, err := resultJSON(channels)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_channel_info ─────────────────────────────────────────────────────────

func (s *Server) toolGetChannelInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_channel_info",
		mcplib.WithDescription("Get detailed information about a single channel: topic, purpose, member count and creation time."),
		mcplib.WithString("channel_id",
			mcplib.Description(`The channel ID (e.g. "C01234ABCD").  Channel names are not resolved here, use list_channels to find the ID.`),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetChannelInfo}
}

func (s *Server) handleGetChannelInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channel, ok := stringArg(req, "channel_id")
	if !ok || channel == "" {
		return resultErr(errMissingArg("get_channel_info", "channel_id")), nil
	}

	ch, err := s.ws.ChannelInfo(ctx, channel)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_info: %w", err)), nil
	}

	result, err := resultJSON(ch)
	if err != nil {
		return resultErr(fmt.Errorf("get_channel_info: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── send_message ─────────────────────────────────────────────────────────────

func (s *Server) toolSendMessage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("send_message",
		mcplib.WithDescription(`Post a message to a channel.  The destination may be restricted by the
operator to an allowed set of channels; a rejected destination is reported
as not_allowlisted and nothing is posted.  Returns a receipt with the
channel ID and the timestamp of the posted message.`),
		mcplib.WithString("channel",
			mcplib.Description(`The destination channel ID (e.g. "C01234ABCD"), name ("general") or "#name" ("#general").`),
			mcplib.Required(),
		),
		mcplib.WithString("text",
			mcplib.Description("The message text to post."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSendMessage}
}

func (s *Server) handleSendMessage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channel, ok := stringArg(req, "channel")
	if !ok || channel == "" {
		return resultErr(errMissingArg("send_message", "channel")), nil
	}
	text, ok := stringArg(req, "text")
	if !ok || text == "" {
		return resultErr(errMissingArg("send_message", "text")), nil
	}

	receipt, err := s.ws.SendMessage(ctx, channel, text)
	if err != nil {
		return resultErr(fmt.Errorf("send_message: %w", err)), nil
	}
	s.logger.InfoContext(ctx, "mcp: send_message: posted", "channel", receipt.Channel, "ts", receipt.Timestamp)

	result, err := resultJSON(receipt)
	if err != nil {
		return resultErr(fmt.Errorf("send_message: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_messages ─────────────────────────────────────────────────────────────

func (s *Server) toolGetMessages() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_messages",
		mcplib.WithDescription(`Retrieve the most recent messages of a channel, newest first.
Thread reply counts are included but thread bodies are not; use get_thread
for those.`),
		mcplib.WithString("channel",
			mcplib.Description(`The channel ID (e.g. "C01234ABCD"), name ("general") or "#name" ("#general").`),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of messages to return (1–1000, default 100)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetMessages}
}

func (s *Server) handleGetMessages(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channel, ok := stringArg(req, "channel")
	if !ok || channel == "" {
		return resultErr(errMissingArg("get_messages", "channel")), nil
	}
	limit := intArg(req, "limit", slackmcp.DefMsgLimit)

	msgs, err := s.ws.Messages(ctx, channel, limit)
	if err != nil {
		return resultErr(fmt.Errorf("get_messages: %w", err)), nil
	}

	result, err := resultJSON(msgs)
	if err != nil {
		return resultErr(fmt.Errorf("get_messages: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_thread ───────────────────────────────────────────────────────────────

func (s *Server) toolGetThread() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_thread",
		mcplib.WithDescription("Retrieve the messages of a single thread, starting with the parent message."),
		mcplib.WithString("channel",
			mcplib.Description(`The channel ID (e.g. "C01234ABCD"), name ("general") or "#name" ("#general") that contains the thread.`),
			mcplib.Required(),
		),
		mcplib.WithString("thread_ts",
			mcplib.Description(`The timestamp of the parent message / thread ID (Slack ts format, e.g. "1609459200.000001").`),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of thread messages to return (1–1000, default 20)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetThread}
}

func (s *Server) handleGetThread(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channel, ok := stringArg(req, "channel")
	if !ok || channel == "" {
		return resultErr(errMissingArg("get_thread", "channel")), nil
	}
	threadTS, ok := stringArg(req, "thread_ts")
	if !ok || threadTS == "" {
		return resultErr(errMissingArg("get_thread", "thread_ts")), nil
	}
	limit := intArg(req, "limit", slackmcp.DefThreadLimit)

	msgs, err := s.ws.ThreadMessages(ctx, channel, threadTS, limit)
	if err != nil {
		return resultErr(fmt.Errorf("get_thread: %w", err)), nil
	}

	result, err := resultJSON(msgs)
	if err != nil {
		return resultErr(fmt.Errorf("get_thread: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── list_users ───────────────────────────────────────────────────────────────

func (s *Server) toolListUsers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_users",
		mcplib.WithDescription("List all users/members of the workspace. Returns user IDs, usernames and real names. Use get_user_info for profile details of a single user."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListUsers}
}

func (s *Server) handleListUsers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	users, err := s.ws.Users(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("list_users: %w", err)), nil
	}

	result, err := resultJSON(users)
	if err != nil {
		return resultErr(fmt.Errorf("list_users: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_user_info ────────────────────────────────────────────────────────────

func (s *Server) toolGetUserInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user_info",
		mcplib.WithDescription("Get detailed information about a single user: display name and email, when the workspace exposes them."),
		mcplib.WithString("user_id",
			mcplib.Description(`The Slack user ID (e.g. "U01234ABCD").  User names are not resolved.`),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserInfo}
}

func (s *Server) handleGetUserInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	userID, ok := stringArg(req, "user_id")
	if !ok || userID == "" {
		return resultErr(errMissingArg("get_user_info", "user_id")), nil
	}

	u, err := s.ws.UserInfo(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_info: %w", err)), nil
	}

	result, err := resultJSON(u)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_info: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── search_messages ──────────────────────────────────────────────────────────

func (s *Server) toolSearchMessages() mcpsrv.ServerTool {
	tool := mcplib.NewTool("search_messages",
		mcplib.WithDescription(`Search workspace messages with the Slack search query syntax
(e.g. "deploy in:#general from:@alice").  Requires the server to run with a
user token; with a bot token Slack denies the search.`),
		mcplib.WithString("query",
			mcplib.Description("The search query."),
			mcplib.Required(),
		),
		mcplib.WithNumber("count",
			mcplib.Description("Maximum number of results to return (1–100, default 20)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSearchMessages}
}

func (s *Server) handleSearchMessages(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	query, ok := stringArg(req, "query")
	if !ok || query == "" {
		return resultErr(errMissingArg("search_messages", "query")), nil
	}
	count := intArg(req, "count", slackmcp.DefSearchCount)

	hits, err := s.ws.SearchMessages(ctx, query, count)
	if err != nil {
		return resultErr(fmt.Errorf("search_messages: %w", err)), nil
	}

	result, err := resultJSON(hits)
	if err != nil {
		return resultErr(fmt.Errorf("search_messages: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_workspace_info ───────────────────────────────────────────────────────

func (s *Server) toolGetWorkspaceInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_workspace_info",
		mcplib.WithDescription("Return workspace/team information: team name, workspace URL and the authenticated user. Involves no Slack API call."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetWorkspaceInfo}
}

func (s *Server) handleGetWorkspaceInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	info := s.ws.WorkspaceInfo()
	if info == nil {
		return resultText("Workspace information is not available."), nil
	}

	result, err := resultJSON(info)
	if err != nil {
		return resultErr(fmt.Errorf("get_workspace_info: serialise: %w", err)), nil
	}
	return result, nil
}
