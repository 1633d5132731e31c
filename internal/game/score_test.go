package game

import (
	"strings"
	"testing"
)

func TestScoreScenarios(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		guess  string
		want   []LetterStatus
	}{
		{"all correct", "abcde", "abcde",
			[]LetterStatus{Correct, Correct, Correct, Correct, Correct}},
		{"no letters shared", "klmno", "abcde",
			[]LetterStatus{NotInWord, NotInWord, NotInWord, NotInWord, NotInWord}},
		{"duplicate split across positions", "aabcd", "abacd",
			[]LetterStatus{Correct, InWord, InWord, Correct, Correct}},
		{"second duplicate unclaimed", "aabcd", "axbcd",
			[]LetterStatus{Correct, NotInWord, Correct, Correct, Correct}},
		{"over-supplied letter", "abcde", "xbcaa",
			[]LetterStatus{NotInWord, Correct, Correct, InWord, NotInWord}},
		{"doubled guess letter single occurrence", "abcde", "aacde",
			[]LetterStatus{Correct, NotInWord, Correct, Correct, Correct}},
		{"late claim after misses", "aabcd", "xxacd",
			[]LetterStatus{NotInWord, NotInWord, InWord, Correct, Correct}},
		{"full rotation", "fghij", "ghijf",
			[]LetterStatus{InWord, InWord, InWord, InWord, InWord}},
		{"rotated duplicates", "aabcd", "bcdaa",
			[]LetterStatus{InWord, InWord, InWord, InWord, InWord}},
		{"duplicates all correct", "aabcd", "aabcd",
			[]LetterStatus{Correct, Correct, Correct, Correct, Correct}},
		{"early claim starves positional match", "xaxxx", "aazzz",
			[]LetterStatus{InWord, NotInWord, NotInWord, NotInWord, NotInWord}},
	}
	for _, tc := range cases {
		got := score(tc.answer, tc.guess)
		if len(got) != len(tc.want) {
			t.Errorf("%s: score(%q, %q): got %d statuses, want %d",
				tc.name, tc.answer, tc.guess, len(got), len(tc.want))
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: score(%q, %q) pos %d: got %v, want %v",
					tc.name, tc.answer, tc.guess, i, got[i], tc.want[i])
			}
		}
	}
}

// Credited positions for any letter never exceed that letter's count in the
// answer, no matter how often the guess repeats it.
func TestScoreConservation(t *testing.T) {
	pairs := []struct{ answer, guess string }{
		{"aabcd", "aaaaa"},
		{"abcde", "eeeee"},
		{"llama", "label"},
		{"geese", "eerie"},
		{"xaxxx", "aazzz"},
		{"aabbc", "bbaac"},
	}
	for _, p := range pairs {
		got := score(p.answer, p.guess)
		for c := byte('a'); c <= 'z'; c++ {
			credited := 0
			for i := range got {
				if p.guess[i] == c && got[i] != NotInWord {
					credited++
				}
			}
			available := strings.Count(p.answer, string(c))
			if credited > available {
				t.Errorf("score(%q, %q): letter %q credited %d times, only %d available",
					p.answer, p.guess, c, credited, available)
			}
		}
	}
}

func TestScoreIsPositional(t *testing.T) {
	// A permutation of the same letters scores differently by position.
	got := score("abcde", "edcba")
	want := []LetterStatus{InWord, InWord, Correct, InWord, InWord}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("score(abcde, edcba) pos %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := score("aabcd", "abacd")
	second := score("aabcd", "abacd")
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pos %d: first call %v, second call %v", i, first[i], second[i])
		}
	}
}

func TestLetterStatusString(t *testing.T) {
	cases := []struct {
		status LetterStatus
		want   string
	}{
		{Correct, "correct"},
		{InWord, "in-word"},
		{NotInWord, "not-in-word"},
		{LetterStatus(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("LetterStatus(%d).String(): got %q, want %q", tc.status, got, tc.want)
		}
	}
}
