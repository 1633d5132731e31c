// internal/cli/client.go
//
// Interactive terminal client driving one game session.
// Responsibilities:
//   - Prompt for guesses and print scored results (tiles + glyph row).
//   - Enforce the six-guess round budget; rejected guesses cost nothing.
//   - Endless mode (Run): random secrets, one round after another.
//   - Daily mode (RunDaily): today's deterministic secret, share grid,
//     reveal on a loss.
//
// Notes:
//   - Input comes from an injected reader, output goes to an injected
//     writer, so round flow is testable without a terminal.
//   - The engine never reveals its secret; the daily reveal works because
//     the client computed the day's answer index itself.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/5donuts/wordle/internal/daily"
	"github.com/5donuts/wordle/internal/game"
	"github.com/5donuts/wordle/internal/words"
)

// maxGuesses is the per-round guess budget.
const maxGuesses = 6

// Client couples a session with a terminal.
type Client struct {
	in      *bufio.Scanner
	out     io.Writer
	session *game.Session
	answers *words.Vocabulary
	salt    string

	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
}

// New builds a Client reading guesses from in and printing to out.
// answers is the same vocabulary the session draws from; salt feeds the
// daily-word derivation.
func New(in io.Reader, out io.Writer, session *game.Session, answers *words.Vocabulary, salt string) *Client {
	return &Client{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
		answers: answers,
		salt:    salt,
		info:    pterm.Info.WithWriter(out),
		success: pterm.Success.WithWriter(out),
		warn:    pterm.Warning.WithWriter(out),
	}
}

// roundResult summarizes one finished round.
type roundResult struct {
	won   bool
	turns int      // scored guesses spent
	rows  []string // one glyph row per scored guess
}

// Run plays endless rounds with random secrets until input is exhausted.
func (c *Client) Run() error {
	c.banner()
	for n := 1; ; n++ {
		c.session.ChooseWord()
		c.info.Printfln("--- Game %d started ---", n)
		log.Debug().Str("session", c.session.ID).Int("game", n).Msg("round started")

		res, err := c.playRound()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		log.Debug().Str("session", c.session.ID).Int("game", n).
			Bool("won", res.won).Int("turns", res.turns).Msg("round finished")
	}
}

// RunDaily plays a single round against the date's deterministic secret.
func (c *Client) RunDaily(now time.Time) error {
	c.banner()
	idx := daily.WordIndex(now, c.salt, c.answers.Len())
	if err := c.session.ChooseWordAt(idx); err != nil {
		return err
	}
	key := daily.DateKey(now)
	c.info.Printfln("Daily word for %s", key)
	log.Debug().Str("session", c.session.ID).Str("date", key).Int("index", idx).Msg("daily round")

	res, err := c.playRound()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if !res.won {
		word, err := c.answers.At(idx)
		if err != nil {
			return err
		}
		c.info.Printfln("The word was %q", word)
	}
	c.printShare(res, key)
	return nil
}

// playRound prompts for up to maxGuesses scored guesses against the
// session's current secret. Guesses the engine rejects are re-prompted
// without consuming the budget. Returns io.EOF when input runs out.
func (c *Client) playRound() (roundResult, error) {
	var res roundResult
	for turn := 1; turn <= maxGuesses; {
		fmt.Fprint(c.out, pterm.LightCyan(fmt.Sprintf("Guess %d/%d: ", turn, maxGuesses)))
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return res, fmt.Errorf("read guess: %w", err)
			}
			return res, io.EOF
		}
		input := c.in.Text()

		statuses, err := c.session.Guess(input)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			c.warn.Printfln("%q is not a five-letter word", strings.TrimSpace(input))
			continue
		case errors.Is(err, game.ErrNotInWordList):
			c.warn.Printfln("%q is not in the word list", strings.TrimSpace(input))
			continue
		case err != nil:
			return res, err
		}

		word := strings.ToLower(strings.TrimSpace(input))
		row := GlyphRow(statuses)
		fmt.Fprintf(c.out, "Guess:  %s\n", tileRow(word, statuses))
		fmt.Fprintf(c.out, "Result: %s\n", row)

		res.turns = turn
		res.rows = append(res.rows, row)

		if lo.EveryBy(statuses, func(s game.LetterStatus) bool { return s == game.Correct }) {
			res.won = true
			c.success.Println("Congratulations!")
			return res, nil
		}
		turn++
	}
	return res, nil
}

// printShare renders the shareable result grid for a daily round.
func (c *Client) printShare(res roundResult, dateKey string) {
	score := fmt.Sprintf("%d/%d", res.turns, maxGuesses)
	if !res.won {
		score = fmt.Sprintf("X/%d", maxGuesses)
	}
	title := fmt.Sprintf("Wordle %s %s", dateKey, score)
	fmt.Fprintln(c.out, pterm.DefaultBox.WithTitle(title).Sprint(strings.Join(res.rows, "\n")))
}
