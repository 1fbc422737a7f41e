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

// In this file: record types returned by Session operations, and their
// conversions from the Slack API types.  Slack API types do not escape the
// Session boundary, the tool layer serialises these records as they are.

import "github.com/rusq/slack"

// Channel is a single conversation of the workspace.  Channels returns the
// summary fields only; ChannelInfo additionally populates Created and
// NumMembers.
type Channel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPrivate  bool   `json:"is_private"`
	IsArchived bool   `json:"is_archived"`
	Created    int64  `json:"created,omitempty"`
	NumMembers int    `json:"num_members,omitempty"`
	Topic      string `json:"topic,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
}

func newChannel(c *slack.Channel) Channel {
	return Channel{
		ID:         c.ID,
		Name:       c.Name,
		IsPrivate:  c.IsPrivate,
		IsArchived: c.IsArchived,
	}
}

func newChannelInfo(c *slack.Channel) Channel {
	ch := newChannel(c)
	ch.Created = int64(c.Created)
	ch.NumMembers = c.NumMembers
	ch.Topic = c.Topic.Value
	ch.Purpose = c.Purpose.Value
	return ch
}

// User is a single member of the workspace.  Users returns the summary
// fields only; UserInfo additionally populates DisplayName and Email, when
// the workspace exposes them.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RealName    string `json:"real_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	IsBot       bool   `json:"is_bot"`
	Deleted     bool   `json:"deleted"`
}

func newUser(u *slack.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		RealName: u.RealName,
		IsBot:    u.IsBot,
		Deleted:  u.Deleted,
	}
}

func newUserInfo(u *slack.User) User {
	usr := newUser(u)
	usr.DisplayName = u.Profile.DisplayName
	usr.Email = u.Profile.Email
	return usr
}

// Message is a single channel or thread message.
type Message struct {
	Timestamp  string `json:"ts"`
	User       string `json:"user,omitempty"`
	Text       string `json:"text"`
	Type       string `json:"type,omitempty"`
	SubType    string `json:"subtype,omitempty"`
	ThreadTS   string `json:"thread_ts,omitempty"`
	ReplyCount int    `json:"reply_count,omitempty"`
}

func newMessage(m *slack.Message) Message {
	return Message{
		Timestamp:  m.Timestamp,
		User:       m.User,
		Text:       m.Text,
		Type:       m.Type,
		SubType:    m.SubType,
		ThreadTS:   m.ThreadTimestamp,
		ReplyCount: m.ReplyCount,
	}
}

func newMessages(mm []slack.Message) []Message {
	out := make([]Message, 0, len(mm))
	for i := range mm {
		out = append(out, newMessage(&mm[i]))
	}
	return out
}

// PostReceipt is the result of a successful SendMessage.
type PostReceipt struct {
	OK        bool    `json:"ok"`
	Channel   string  `json:"channel"`
	Timestamp string  `json:"ts"`
	Message   Message `json:"message"`
}

// SearchHit is a single search result message.
type SearchHit struct {
	Channel     string `json:"channel"`
	ChannelName string `json:"channel_name,omitempty"`
	Timestamp   string `json:"ts"`
	User        string `json:"user,omitempty"`
	Username    string `json:"username,omitempty"`
	Text        string `json:"text"`
	Permalink   string `json:"permalink,omitempty"`
}

func newSearchHit(m *slack.SearchMessage) SearchHit {
	return SearchHit{
		Channel:     m.Channel.ID,
		ChannelName: m.Channel.Name,
		Timestamp:   m.Timestamp,
		User:        m.User,
		Username:    m.Username,
		Text:        m.Text,
		Permalink:   m.Permalink,
	}
}

// WorkspaceInfo is the workspace identity captured by the auth probe.
type WorkspaceInfo struct {
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	BotID  string `json:"bot_id,omitempty"`
}

func newWorkspaceInfo(r *slack.AuthTestResponse) *WorkspaceInfo {
	return &WorkspaceInfo{
		URL:    r.URL,
		Team:   r.Team,
		User:   r.User,
		TeamID: r.TeamID,
		UserID: r.UserID,
		BotID:  r.BotID,
	}
}
