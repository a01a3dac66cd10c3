// apps/go-solver/internal/freq/freq.go
//
// Letter-frequency tables over the remaining candidate words and the opening-guess
// heuristic built on top of them.
//
// The tables are independent of the prefix tree: they only shrink when a solved word
// leaves the candidate pool, never when feedback edits a round's working tree.

package freq

import (
	"sort"
	"strings"
)

// DefaultFiller fills positions no ranked letter could claim.
const DefaultFiller = 'a'

// Tables holds global and per-position letter counts.
type Tables struct {
	wordLen    int
	global     map[byte]int
	positional []map[byte]int
}

// New counts every letter of every word, globally and at its position.
func New(words []string, wordLen int) *Tables {
	t := &Tables{
		wordLen:    wordLen,
		global:     make(map[byte]int),
		positional: make([]map[byte]int, wordLen),
	}
	for i := range t.positional {
		t.positional[i] = make(map[byte]int)
	}
	for _, w := range words {
		for i := 0; i < len(w) && i < wordLen; i++ {
			t.global[w[i]]++
			t.positional[i][w[i]]++
		}
	}
	return t
}

// WordLen reports the word length the tables were built for.
func (t *Tables) WordLen() int { return t.wordLen }

// Empty reports whether no letters are counted anymore.
func (t *Tables) Empty() bool { return len(t.global) == 0 }

// Global returns how often letter occurs across the remaining words.
func (t *Tables) Global(letter byte) int { return t.global[letter] }

// Positional returns how often letter occurs at pos across the remaining words.
func (t *Tables) Positional(pos int, letter byte) int {
	if pos < 0 || pos >= len(t.positional) {
		return 0
	}
	return t.positional[pos][letter]
}

// RemoveWord takes word's letters out of both tables. Counts reaching zero are
// dropped so Empty and Ranked only see letters still in play.
func (t *Tables) RemoveWord(word string) {
	for i := 0; i < len(word) && i < t.wordLen; i++ {
		decrement(t.global, word[i])
		decrement(t.positional[i], word[i])
	}
}

func decrement(m map[byte]int, letter byte) {
	n, ok := m[letter]
	if !ok {
		return
	}
	if n <= 1 {
		delete(m, letter)
		return
	}
	m[letter] = n - 1
}

// Ranked returns n letters ordered by global count, most frequent first, ties by
// letter. When fewer than n letters are known the ranking repeats from the top.
func (t *Tables) Ranked(n int) []byte {
	if len(t.global) == 0 || n <= 0 {
		return nil
	}
	letters := make([]byte, 0, len(t.global))
	for l := range t.global {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		ci, cj := t.global[letters[i]], t.global[letters[j]]
		if ci != cj {
			return ci > cj
		}
		return letters[i] < letters[j]
	})
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, letters...)
	}
	return out[:n]
}

// OpeningGuess assigns each ranked letter to the free position where it is most
// frequent (strictly positive). Positions left over get filler. It reports false
// when the tables are empty.
func (t *Tables) OpeningGuess(filler byte) (string, bool) {
	ranked := t.Ranked(t.wordLen)
	if ranked == nil {
		return "", false
	}
	res := make([]byte, t.wordLen)
	taken := make([]bool, t.wordLen)

	for _, l := range ranked {
		best, at := 0, -1
		for i := 0; i < t.wordLen; i++ {
			if taken[i] {
				continue
			}
			if c := t.positional[i][l]; c > best {
				best, at = c, i
			}
		}
		if at >= 0 {
			taken[at] = true
			res[at] = l
		}
	}

	var b strings.Builder
	b.Grow(t.wordLen)
	for i, l := range res {
		if !taken[i] {
			l = filler
		}
		b.WriteByte(l)
	}
	return b.String(), true
}
