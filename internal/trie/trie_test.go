package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{"bear", "beat", "cart", "care"}

// assertWeights checks that every internal node weighs the sum of its children
// and every leaf weighs at least one.
func assertWeights(t *testing.T, n *Node) {
	t.Helper()
	if n.Len() == 0 {
		assert.GreaterOrEqual(t, n.Weight(), 1, "leaf weight")
		return
	}
	sum := 0
	for _, l := range n.Letters() {
		child := n.Child(l)
		sum += child.Weight()
		assertWeights(t, child)
	}
	assert.Equal(t, sum, n.Weight(), "node %q weight", n.Letter())
}

func TestBuild_WeightsCountPrefixes(t *testing.T) {
	root := Build(sample)

	assert.Equal(t, []byte("bc"), root.Letters())
	assert.Equal(t, 2, root.Child('b').Weight())
	assert.Equal(t, 2, root.Child('b').Child('e').Child('a').Weight())
	assert.Equal(t, 1, root.Child('c').Child('a').Child('r').Child('t').Weight())
	assert.ElementsMatch(t, sample, root.Words())
}

func TestAddChild_ReusesExisting(t *testing.T) {
	root := New()
	a := root.AddChild('a')
	again := root.AddChild('a')

	assert.Same(t, a, again)
	assert.Equal(t, 2, a.Weight())
	assert.Equal(t, 1, root.Len(), "child letters stay unique")
}

func TestRemove_Everywhere(t *testing.T) {
	root := Build(sample)
	root.Remove('t')
	root.PurgeBranches(4)
	root.Update()

	assert.ElementsMatch(t, []string{"bear", "care"}, root.Words())
	assertWeights(t, root)
}

func TestRemoveAt_OnlyThatDepth(t *testing.T) {
	root := Build([]string{"abba", "baab", "abab"})
	root.RemoveAt('b', 1)
	root.PurgeBranches(4)
	root.Update()

	assert.Equal(t, []string{"baab"}, root.Words())
	assertWeights(t, root)
}

func TestRetain(t *testing.T) {
	tests := []struct {
		name   string
		letter byte
		depth  int
		want   []string
	}{
		{name: "first letter present", letter: 'c', depth: 0, want: []string{"care", "cart"}},
		{name: "first letter absent", letter: 'z', depth: 0, want: nil},
		{name: "last letter", letter: 'e', depth: 3, want: []string{"care"}},
		{name: "middle letter", letter: 'r', depth: 2, want: []string{"care", "cart"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build(sample)
			root.Retain(tt.letter, tt.depth)
			if tt.depth == 0 {
				assert.LessOrEqual(t, root.Len(), 1)
			}
			root.PurgeBranches(4)
			root.Update()
			assert.Equal(t, tt.want, root.Words())
		})
	}
}

func TestPurgeBranches_NoStrandedPaths(t *testing.T) {
	root := Build(sample)
	root.RemoveAt('r', 2)
	root.RemoveAt('a', 2)
	root.PurgeBranches(4)
	root.Update()

	assert.Equal(t, 0, root.Len(), "every path lost a letter")

	root = Build(sample)
	root.RemoveAt('t', 3)
	root.PurgeBranches(4)
	root.Update()

	var check func(n *Node, depth int)
	check = func(n *Node, depth int) {
		if depth < 4 {
			assert.NotZero(t, n.Len(), "node at depth %d lost all children", depth)
		}
		for _, l := range n.Letters() {
			check(n.Child(l), depth+1)
		}
	}
	check(root, 0)
	assert.ElementsMatch(t, []string{"bear", "care"}, root.Words())
}

func TestUpdate_LeafFloor(t *testing.T) {
	root := Build(sample)
	root.Update()
	assertWeights(t, root)
	assert.Equal(t, 4, root.Weight())

	empty := New()
	empty.Update()
	assert.Equal(t, 1, empty.Weight())
}

func TestNext_HeaviestThenLowestLetter(t *testing.T) {
	root := Build([]string{"ab", "ac", "bc", "bd", "be"})
	assert.Equal(t, byte('b'), root.Next().Letter())

	tie := Build([]string{"xa", "ya", "za"})
	assert.Equal(t, byte('x'), tie.Next().Letter())

	assert.Nil(t, New().Next())
}

func TestNextPlacing(t *testing.T) {
	root := Build([]string{"ab", "bc", "bd"})

	node, rest := root.NextPlacing([]byte("zaa"))
	assert.Equal(t, byte('a'), node.Letter())
	assert.Equal(t, []byte("za"), rest, "only one occurrence consumed")

	node, rest = root.NextPlacing([]byte("zq"))
	assert.Equal(t, byte('b'), node.Letter(), "falls back to heaviest")
	assert.Equal(t, []byte("zq"), rest)
}

func TestGuess_Length(t *testing.T) {
	root := Build(sample)
	guess := root.Guess()
	assert.Len(t, guess, 4)
	assert.Contains(t, sample, guess)

	placed, rest := root.GuessPlacing([]byte("ct"))
	assert.Equal(t, "cart", placed)
	assert.Empty(t, rest)

	assert.Equal(t, "", New().Guess())
}

func TestCopy_IsDeep(t *testing.T) {
	orig := Build(sample)
	c := orig.Copy()
	c.Remove('b')
	c.PurgeBranches(4)
	c.Update()

	assert.ElementsMatch(t, sample, orig.Words())
	assert.ElementsMatch(t, []string{"care", "cart"}, c.Words())
	assert.Equal(t, 2, orig.Child('b').Weight())
}

func TestRemoveWord(t *testing.T) {
	root := Build(sample)
	require.True(t, root.RemoveWord("bear"))

	assert.ElementsMatch(t, []string{"beat", "cart", "care"}, root.Words())
	assert.Equal(t, 1, root.Child('b').Weight())
	assertWeights(t, root.Child('b'))

	require.True(t, root.RemoveWord("beat"))
	assert.Nil(t, root.Child('b'))

	assert.False(t, root.RemoveWord("zzzz"))
	assert.ElementsMatch(t, []string{"cart", "care"}, root.Words())

	for i := 0; i < 10; i++ {
		c := root.Copy()
		assert.NotEqual(t, "bear", c.Guess())
		assert.NotEqual(t, "beat", c.Guess())
	}
}

func TestRemoveWord_MissingPathLeavesTree(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		word  string
	}{
		{"diverges at second letter", []string{"bear", "cart"}, "bxxx"},
		{"diverges at third letter", []string{"bear", "beat", "cart"}, "bexx"},
		{"longer than the words", []string{"bear"}, "bears"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build(tt.words)
			want := root.Copy()

			assert.False(t, root.RemoveWord(tt.word))
			assert.ElementsMatch(t, tt.words, root.Words())
			assert.Equal(t, want, root, "weights and links unchanged")
		})
	}
}
