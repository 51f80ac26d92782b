// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// Emotion is the presentational mood of the station assistant.
type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionThinking Emotion = "thinking"
	EmotionExcited  Emotion = "excited"
	EmotionNeutral  Emotion = "neutral"
)

// emotionOrder is the manual cycle order. Cycle wraps from the last to the first.
var emotionOrder = []Emotion{EmotionHappy, EmotionThinking, EmotionExcited, EmotionNeutral}

// Emotions returns all emotions in cycle order.
func Emotions() []Emotion {
	out := make([]Emotion, len(emotionOrder))
	copy(out, emotionOrder)
	return out
}

// Cycle returns the next emotion in the fixed rotation.
// An unknown value is treated like neutral and advances to happy.
func (e Emotion) Cycle() Emotion {
	for i, cur := range emotionOrder {
		if cur == e {
			return emotionOrder[(i+1)%len(emotionOrder)]
		}
	}
	return emotionOrder[0]
}

// Valid reports whether e is one of the four known emotions.
func (e Emotion) Valid() bool {
	for _, cur := range emotionOrder {
		if cur == e {
			return true
		}
	}
	return false
}

// String returns the string representation of the emotion.
func (e Emotion) String() string {
	return string(e)
}

// ParseEmotion converts a name into an Emotion.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown emotion %q", s)
	}
	return e, nil
}
