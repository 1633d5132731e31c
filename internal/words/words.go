// internal/words/words.go
//
// Word-list loading.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files
//     or fall back to embedded defaults.
//   - Normalize lines: trim, lowercase, keep only valid five-letter words.
//
// Word lists:
//   - "answers": candidate secret words.
//   - "guesses": valid guesses (always includes every answer).
//
// Resolution order (Default):
//   1. WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE both set → load both.
//   2. Only WORDS_ANSWERS_FILE set → answers from file, guesses = answers.
//   3. Only WORDS_ALLOWED_FILE set → that list serves both roles.
//   4. Neither set → embedded defaults from answers.txt and guesses.txt.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed answers.txt
var embeddedAnswers string

//go:embed guesses.txt
var embeddedGuesses string

// Read collects valid words from r, one per line. Lines are trimmed and
// lowercased; anything that is not a five-letter a–z word (blank lines,
// comments, stray tokens) is dropped.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == Length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// LoadFile builds a Vocabulary from the file at path.
func LoadFile(path string) (*Vocabulary, error) {
	list, err := readWordFile(path)
	if err != nil {
		return nil, err
	}
	return New(list)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase five-letter words.
func normalizeLines(s string) []string {
	return lo.FilterMap(strings.Split(s, "\n"), func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(strings.ToLower(line))
		return w, len(w) == Length && isAlpha(w)
	})
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Default resolves the guess and answer vocabularies from the environment,
// falling back to the embedded lists. The guess vocabulary always contains
// every answer, so an answer is never rejected as a guess.
func Default() (guesses, answers *Vocabulary, err error) {
	var ansList, allowList []string

	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, nil, fmt.Errorf("read answers: %w", err)
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, nil, fmt.Errorf("read allowed: %w", err)
		}

	// Case 2: only answers provided → every answer is also a guess
	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, nil, fmt.Errorf("read answers: %w", err)
		}
		allowList = ansList

	// Case 3: only allowed provided → use for both roles
	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, nil, fmt.Errorf("read allowed: %w", err)
		}
		ansList = allowList

	// Case 4: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		allowList = normalizeLines(embeddedGuesses)
	}

	answers, err = New(ansList)
	if err != nil {
		return nil, nil, fmt.Errorf("answers: %w", err)
	}

	// Guesses = answers ∪ allowed, answers first, duplicates dropped.
	seen := make(map[string]struct{}, len(ansList)+len(allowList))
	union := make([]string, 0, len(ansList)+len(allowList))
	for _, w := range ansList {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			union = append(union, w)
		}
	}
	for _, w := range allowList {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			union = append(union, w)
		}
	}
	guesses, err = New(union)
	if err != nil {
		return nil, nil, fmt.Errorf("guesses: %w", err)
	}
	return guesses, answers, nil
}
