package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// safeIcon pads an icon with spacing that accounts for its display width.
// Double-width glyphs (most emoji) get two trailing spaces so the next
// character is never swallowed by terminals that render them wide.
func safeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return icon + strings.Repeat(" ", spaces)
}

// iconText formats an icon followed by text with proper spacing.
func iconText(icon, text string) string {
	return safeIcon(icon) + text
}

// truncate shortens s to at most width display cells, appending an
// ellipsis when anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
