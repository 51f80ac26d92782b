// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"regexp"
	"testing"

	zone "github.com/lrstanley/bubblezone"

	"github.com/jeranaias/nexus-tui/internal/assistant"
	"github.com/jeranaias/nexus-tui/internal/content"
	"github.com/jeranaias/nexus-tui/internal/ui/styles"
)

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

// plain strips SGR sequences so assertions can look at text.
func plain(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// scanned resolves zone markers the way the program does before printing.
func scanned(t *testing.T, z *zone.Manager, s string) string {
	t.Helper()
	return plain(z.Scan(s))
}

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func testAssistant(c *content.Content) *assistant.Assistant {
	return assistant.New(assistant.Options{
		Greeting:     c.Assistant.Greeting,
		Replies:      c.Assistant.Replies,
		QuickReplies: c.Assistant.QuickReplies,
		Rand:         zeroRand{},
	})
}
