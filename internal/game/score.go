// internal/game/score.go
//
// Guess scoring with duplicate-letter accounting.
//
// The scorer walks the guess left to right against a per-letter budget of
// unclaimed secret occurrences. Each position first claims an occurrence of
// its letter if any remain, then compares positions. A claim made by an
// earlier position is gone for good: once a letter's budget is spent, a
// later position holding that letter scores NotInWord even when it lines up
// with the secret.

package game

// score maps (answer, guess) to one status per guess position. Both inputs
// must already be normalized five-letter lowercase words.
func score(answer, guess string) []LetterStatus {
	res := make([]LetterStatus, len(guess))

	// Unclaimed occurrences per letter (a–z).
	var counts [26]int
	for _, r := range answer {
		counts[idx(r)]++
	}

	for i := 0; i < len(guess); i++ {
		j := idx(rune(guess[i]))
		if counts[j] == 0 {
			res[i] = NotInWord
			continue
		}
		counts[j]--
		if guess[i] == answer[i] {
			res[i] = Correct
		} else {
			res[i] = InWord
		}
	}
	return res
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(r rune) int { return int(r - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
