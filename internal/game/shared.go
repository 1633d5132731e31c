// internal/game/shared.go
//
// Shared wraps a Session for callers that drive one session from several
// goroutines. The plain Session is single-goroutine by contract; Shared
// serializes the operations that touch the secret-word field.
//
// Locking:
//   - ChooseWord / ChooseWordAt take the write lock (they replace the secret).
//   - Guess takes the read lock (scoring never mutates the session).

package game

import "sync"

// Shared is a concurrency-safe wrapper around one Session.
type Shared struct {
	mu sync.RWMutex
	s  *Session
}

// NewShared wraps s.
func NewShared(s *Session) *Shared {
	return &Shared{s: s}
}

// ChooseWord draws a new secret under the write lock.
func (sh *Shared) ChooseWord() {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.s.ChooseWord()
}

// ChooseWordAt sets the secret to the answer at index i under the write lock.
func (sh *Shared) ChooseWordAt(i int) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.s.ChooseWordAt(i)
}

// Guess validates and scores word under the read lock.
func (sh *Shared) Guess(word string) ([]LetterStatus, error) {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.s.Guess(word)
}
