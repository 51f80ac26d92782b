// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by the station screens.
//
// This package defines the small domain vocabulary used throughout the
// application: the chat conversation log, the assistant's emotion indicator,
// and the selectable portfolio modules.
//
// # Key Types
//
//   - Conversation: Append-only chat log for one widget session
//   - Message: Single conversation entry with sender, text and timestamp
//   - Sender: Entry author (user or assistant)
//   - Emotion: Presentational mood of the assistant (happy, thinking, excited, neutral)
//   - Module: Selectable content section (about, projects, skills, or none)
//
// # Usage
//
// Record an exchange:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("Tell me about your projects")
//	conv.AddAssistantMessage("Great question! Let me think...")
//
// Rotate the emotion indicator:
//
//	e := model.EmotionNeutral.Cycle() // EmotionHappy
package model
