// internal/cli/render.go
//
// Presentation helpers: glyphs, styled tile rows, the startup banner.
// The engine emits statuses only; everything a player sees is built here.

package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/samber/lo"

	"github.com/5donuts/wordle/internal/game"
)

// Glyph maps a letter status to its fixed one-character glyph.
func Glyph(s game.LetterStatus) string {
	switch s {
	case game.Correct:
		return "🟩"
	case game.InWord:
		return "🟨"
	default:
		return "⬛"
	}
}

// GlyphRow renders one glyph per status, in guess order.
func GlyphRow(statuses []game.LetterStatus) string {
	return strings.Join(lo.Map(statuses, func(s game.LetterStatus, _ int) string {
		return Glyph(s)
	}), "")
}

var tileStyles = map[game.LetterStatus]*pterm.Style{
	game.Correct:   pterm.NewStyle(pterm.FgBlack, pterm.BgGreen),
	game.InWord:    pterm.NewStyle(pterm.FgBlack, pterm.BgYellow),
	game.NotInWord: pterm.NewStyle(pterm.FgWhite, pterm.BgDarkGray),
}

// tileRow renders the guessed word as colored letter tiles.
// word must be the normalized five-letter guess the statuses belong to.
func tileRow(word string, statuses []game.LetterStatus) string {
	parts := make([]string, len(statuses))
	for i, st := range statuses {
		parts[i] = tileStyles[st].Sprintf(" %c ", word[i])
	}
	return strings.Join(parts, "")
}

func (c *Client) banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgGreen.ToStyle()),
		putils.LettersFromStringWithStyle("ordle", pterm.FgDarkGray.ToStyle()),
	).WithWriter(c.out).Render()
}
