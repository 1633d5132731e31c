// internal/words/vocabulary.go
//
// Vocabulary is an immutable five-letter word list used in two roles:
//   - guesses: a membership set consulted when validating player input.
//   - answers: an ordered sequence indexed when drawing a secret word.
//
// Constraints:
//   • Every word is exactly 5 lowercase ASCII letters (a–z).
//   • Construction fails on an empty list or a malformed word.
//   • One Vocabulary may be shared by any number of sessions; it is
//     borrowed, never copied.

package words

import (
	"errors"
	"fmt"
)

// Length is the fixed word length for every vocabulary entry and guess.
const Length = 5

var errEmpty = errors.New("words: empty vocabulary")

// Vocabulary holds one word list with both an ordered view and a lookup set.
type Vocabulary struct {
	words []string
	set   map[string]struct{}
}

// New builds a Vocabulary from list. It rejects an empty list and any
// word that is not exactly Length lowercase ASCII letters.
func New(list []string) (*Vocabulary, error) {
	if len(list) == 0 {
		return nil, errEmpty
	}
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		if len(w) != Length || !isAlpha(w) {
			return nil, fmt.Errorf("words: %q is not a valid five-letter word", w)
		}
		set[w] = struct{}{}
	}
	return &Vocabulary{words: list, set: set}, nil
}

// Len returns the number of entries, duplicates included.
func (v *Vocabulary) Len() int { return len(v.words) }

// At returns the word at index i.
func (v *Vocabulary) At(i int) (string, error) {
	if i < 0 || i >= len(v.words) {
		return "", fmt.Errorf("words: index %d out of range [0,%d)", i, len(v.words))
	}
	return v.words[i], nil
}

// Contains reports whether w is in the vocabulary.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[w]
	return ok
}

// Words returns the backing list. Callers must not mutate it.
func (v *Vocabulary) Words() []string { return v.words }
