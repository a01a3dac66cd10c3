// apps/go-solver/internal/words/words.go
//
// Candidate word lists for the solver and the scoring harness.
//
// Responsibilities:
//   - Load a list from a file, any io.Reader, or the embedded default list.
//   - Normalise entries: trim, lowercase, skip blanks and "#" comments, keep only
//     alphabetic words of one length.
//   - Lookups and helpers: Contains, Random, Stats.
//
// Word length:
//   The length is fixed by Options.Length when set, otherwise by the first valid
//   word. Words of any other length are dropped and counted in Stats.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrEmpty is returned when no valid word survives normalisation.
var ErrEmpty = errors.New("words: list is empty")

// Options control normalisation.
type Options struct {
	Length int // Required word length; 0 takes the first valid word's length.
}

// List is an ordered, duplicate-free set of equal-length words.
type List struct {
	words   []string
	set     map[string]struct{}
	wordLen int
	dropped int
}

// Load reads one word per line from path.
func Load(path string, opts Options) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	l, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Embedded returns the default list shipped in the binary.
func Embedded(opts Options) (*List, error) {
	f, err := assets.FS.Open(assets.WordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse reads one word per line from r.
func Parse(r io.Reader, opts Options) (*List, error) {
	l := &List{set: make(map[string]struct{}), wordLen: opts.Length}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		l.add(s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// FromSlice builds a list from in-memory words with the same normalisation.
func FromSlice(ws []string, opts Options) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(ws)), wordLen: opts.Length}
	for _, w := range ws {
		l.add(strings.ToLower(strings.TrimSpace(w)))
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

func (l *List) add(w string) {
	if !isAlpha(w) {
		l.dropped++
		return
	}
	if l.wordLen == 0 {
		l.wordLen = len(w)
	}
	if len(w) != l.wordLen {
		l.dropped++
		return
	}
	if _, dup := l.set[w]; dup {
		return
	}
	l.set[w] = struct{}{}
	l.words = append(l.words, w)
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns a copy of the words in input order.
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// Len reports the number of words.
func (l *List) Len() int { return len(l.words) }

// WordLen reports the common word length.
func (l *List) WordLen() int { return l.wordLen }

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Contains reports whether w is in the list (case-insensitive).
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Stats returns (kept, dropped) line counts.
func (l *List) Stats() (kept int, dropped int) {
	return len(l.words), l.dropped
}
