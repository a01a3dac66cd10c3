// apps/go-solver/internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Responsibilities:
//   - DateKey: canonical UTC date string used as the HMAC message and DB key.
//   - WordIndex: HMAC-SHA256(salt, date) reduced modulo the list length.
//   - Target: the day's word from a candidate list.
//
// The same salt and list always yield the same word for a given UTC day, so the
// CLI and the HTTP server agree without sharing state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the day of t.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Target returns the word for the day of t, or "" for an empty list.
func Target(t time.Time, salt string, list *words.List) string {
	if list == nil || list.Len() == 0 {
		return ""
	}
	return list.At(WordIndex(t, salt, list.Len()))
}
