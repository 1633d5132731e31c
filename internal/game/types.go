// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/in-word/not-in-word).
//   - The sentinel errors callers branch on when a guess cannot be scored.

package game

import "errors"

// LetterStatus represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Correct:   letter occupies the same position in guess and secret.
//   - InWord:    letter occurs in the secret, and this occurrence was claimed
//                for a different position.
//   - NotInWord: letter does not occur in the secret, or every occurrence is
//                already claimed by an earlier guess position.
type LetterStatus uint8

const (
	Correct LetterStatus = iota
	InWord
	NotInWord
)

// String returns a stable lowercase name for the status.
func (s LetterStatus) String() string {
	switch s {
	case Correct:
		return "correct"
	case InWord:
		return "in-word"
	case NotInWord:
		return "not-in-word"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by Session.Guess. All three are recoverable:
// the session is untouched and the caller may prompt for another guess.
var (
	ErrNoWord        = errors.New("no word chosen")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
)
