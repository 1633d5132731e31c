package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	// 23:30 at UTC-5 is already the next day in UTC.
	zone := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, time.August, 21, 23, 30, 0, 0, zone)

	if got, want := DateKey(local), "2026-08-22"; got != want {
		t.Errorf("DateKey: got %q, want %q", got, want)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	date := time.Date(2026, time.August, 21, 12, 0, 0, 0, time.UTC)
	for _, n := range []int{1, 2, 97, 1000} {
		first := WordIndex(date, "salt", n)
		second := WordIndex(date, "salt", n)
		if first != second {
			t.Errorf("answersLen %d: got %d then %d", n, first, second)
		}
		if first < 0 || first >= n {
			t.Errorf("answersLen %d: index %d out of range", n, first)
		}
	}
}

func TestWordIndexSameDayAnyClock(t *testing.T) {
	morning := time.Date(2026, time.August, 21, 0, 5, 0, 0, time.UTC)
	night := time.Date(2026, time.August, 21, 23, 55, 0, 0, time.UTC)

	if a, b := WordIndex(morning, "salt", 500), WordIndex(night, "salt", 500); a != b {
		t.Errorf("same UTC day produced different indexes: %d vs %d", a, b)
	}
}

func TestWordIndexSaltDecorrelates(t *testing.T) {
	const n = 1000
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	differs := false
	for day := 0; day < 5; day++ {
		date := start.AddDate(0, 0, day)
		if WordIndex(date, "alpha", n) != WordIndex(date, "beta", n) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("five consecutive days collided across salts")
	}
}

func TestWordIndexDateVaries(t *testing.T) {
	const n = 1000
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	base := WordIndex(start, "salt", n)
	varies := false
	for day := 1; day < 6; day++ {
		if WordIndex(start.AddDate(0, 0, day), "salt", n) != base {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("index constant across six consecutive days")
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	date := time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC)
	if got := WordIndex(date, "salt", 0); got != 0 {
		t.Errorf("answersLen 0: got %d, want 0", got)
	}
	if got := WordIndex(date, "salt", -3); got != 0 {
		t.Errorf("answersLen -3: got %d, want 0", got)
	}
}
