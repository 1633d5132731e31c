// internal/daily/daily.go
//
// Deterministic daily-answer selection.
//
// Every run on the same UTC calendar date maps to the same answer index:
//
//	index = HMAC-SHA256(salt, "YYYY-MM-DD")[0:8] mod answersLen
//
// The salt decorrelates deployments, so one install's daily word reveals
// nothing about another's.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns the UTC calendar date of t as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date to an answer-list index in [0, answersLen).
// Returns 0 when answersLen is not positive.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)

	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
