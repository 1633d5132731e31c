// internal/game/session.go
//
// Game session: the secret-word lifecycle for one player.
// Responsibilities:
//   - Borrow the guess and answer vocabularies for the session's lifetime.
//   - Draw secrets uniformly from the answers (ChooseWord / ChooseWordAt).
//   - Validate and score guesses (Guess) without exposing the secret.
//
// Notes:
//   - A Session is not safe for concurrent use; wrap it in Shared when
//     goroutines share one session.
//   - The random source is session-local and injectable via WithRand.

package game

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/5donuts/wordle/internal/words"
)

// Session holds both vocabularies, the session-local random source, and the
// current secret word. The vocabularies are shared with the caller, never
// copied; the secret is never returned by any method.
type Session struct {
	ID      string
	guesses *words.Vocabulary // membership checks
	answers *words.Vocabulary // ordered secret candidates
	rng     *rand.Rand
	word    string // current secret, empty until ChooseWord
}

// Option configures a Session at construction.
type Option func(*Session)

// WithRand replaces the session's random source, for deterministic draws.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// New constructs a Session borrowing the two vocabularies.
// Both must be non-nil and non-empty. No secret is selected yet.
func New(guesses, answers *words.Vocabulary, opts ...Option) (*Session, error) {
	if guesses == nil || guesses.Len() == 0 {
		return nil, errors.New("game: empty guess vocabulary")
	}
	if answers == nil || answers.Len() == 0 {
		return nil, errors.New("game: empty answer vocabulary")
	}
	s := &Session{
		ID:      uuid.NewString(),
		guesses: guesses,
		answers: answers,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ChooseWord draws a new secret uniformly from the answers, replacing any
// previous secret. Successive calls start successive rounds; each draw is
// independent, so repeats are possible.
func (s *Session) ChooseWord() {
	w, _ := s.answers.At(s.rng.Intn(s.answers.Len()))
	s.word = w
}

// ChooseWordAt sets the secret to the answer at index i.
func (s *Session) ChooseWordAt(i int) error {
	w, err := s.answers.At(i)
	if err != nil {
		return err
	}
	s.word = w
	return nil
}

// Guess validates word and scores it against the current secret.
//
// Validation rules, in order:
//   - A secret must have been chosen (ErrNoWord).
//   - After trimming and lowercasing, the guess must be exactly five
//     a–z letters (ErrInvalidGuess).
//   - The guess must be in the guess vocabulary (ErrNotInWordList).
//
// On error the session is untouched: nothing is consumed, the secret stays,
// and the next call behaves as if this one never happened. On success the
// returned slice holds one status per guess position.
func (s *Session) Guess(word string) ([]LetterStatus, error) {
	if s.word == "" {
		return nil, ErrNoWord
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != words.Length || !isAlpha(word) {
		return nil, ErrInvalidGuess
	}
	if !s.guesses.Contains(word) {
		return nil, ErrNotInWordList
	}
	return score(s.word, word), nil
}
