// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by the station screens.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the ordered, append-only log of one chat widget session.
type Conversation struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]*Message, 0, 8),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends an entry to the conversation.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AddUserMessage creates and appends a user entry.
func (c *Conversation) AddUserMessage(text string) *Message {
	msg := NewMessage(SenderUser, text)
	c.AddMessage(msg)
	return msg
}

// AddAssistantMessage creates and appends an assistant entry.
func (c *Conversation) AddAssistantMessage(text string) *Message {
	msg := NewMessage(SenderAssistant, text)
	c.AddMessage(msg)
	return msg
}

// GetLastMessage returns the most recent entry, or nil if empty.
func (c *Conversation) GetLastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// CountBySender returns how many entries the given sender has written.
func (c *Conversation) CountBySender(s Sender) int {
	n := 0
	for _, m := range c.Messages {
		if m.Sender == s {
			n++
		}
	}
	return n
}

// MessageCount returns the number of entries.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if the conversation has no entries.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// GetHistory returns a copy of the entries slice.
func (c *Conversation) GetHistory() []*Message {
	out := make([]*Message, len(c.Messages))
	copy(out, c.Messages)
	return out
}
