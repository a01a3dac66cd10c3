// apps/go-solver/internal/trie/trie.go
//
// Weighted prefix tree over the candidate word set.
// Responsibilities:
//   - Build the tree from equal-length words (one edge per letter, depth = position).
//   - Structural edits driven by feedback: remove a letter everywhere, remove it at one
//     depth, retain a single letter at one depth, purge stranded partial paths.
//   - Weight bookkeeping: bottom-up recomputation after edits.
//   - Guess extraction along the heaviest path, optionally preferring letters that are
//     known to be in the word but not yet placed.
//
// Notes:
//   - Each node exclusively owns its children; there are no parent pointers.
//   - Depth arguments are relative to the receiver, so calling an edit on the root
//     addresses an absolute letter position.
//   - A Node is not safe for concurrent use.

package trie

import "sort"

// Node is one vertex of the tree. The root carries no letter.
type Node struct {
	letter   byte
	weight   int
	children map[byte]*Node
}

// New returns an empty root node.
func New() *Node {
	return &Node{weight: 1, children: make(map[byte]*Node)}
}

// Build constructs a tree from words. Weights are exact afterwards: every node's
// weight is the number of words sharing its prefix.
func Build(words []string) *Node {
	root := New()
	for _, w := range words {
		root.Insert(w)
	}
	return root
}

// Insert adds word below n, one AddChild per letter.
func (n *Node) Insert(word string) {
	node := n
	for i := 0; i < len(word); i++ {
		node = node.AddChild(word[i])
	}
}

// Letter reports the edge label leading to n (0 for the root).
func (n *Node) Letter() byte { return n.letter }

// Weight reports the current weight of n.
func (n *Node) Weight() int { return n.weight }

// Len reports the number of children of n.
func (n *Node) Len() int { return len(n.children) }

// Child returns the child labeled letter, or nil.
func (n *Node) Child(letter byte) *Node { return n.children[letter] }

// Letters returns the labels of n's children in ascending order.
func (n *Node) Letters() []byte {
	out := make([]byte, 0, len(n.children))
	for l := range n.children {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddChild returns the child for letter, bumping its weight by one when it already
// exists (one more word shares the prefix) or creating it with weight one.
func (n *Node) AddChild(letter byte) *Node {
	if child, ok := n.children[letter]; ok {
		child.weight++
		return child
	}
	child := &Node{letter: letter, weight: 1, children: make(map[byte]*Node)}
	n.children[letter] = child
	return child
}

// Remove deletes every edge labeled letter anywhere below n.
func (n *Node) Remove(letter byte) {
	delete(n.children, letter)
	for _, child := range n.children {
		child.Remove(letter)
	}
}

// RemoveAt deletes the edge labeled letter among the nodes depth edges below n.
func (n *Node) RemoveAt(letter byte, depth int) {
	if depth == 0 {
		delete(n.children, letter)
		return
	}
	for _, child := range n.children {
		child.RemoveAt(letter, depth-1)
	}
}

// Retain keeps only the child labeled letter (if any) on every node depth edges
// below n; all sibling subtrees are dropped.
func (n *Node) Retain(letter byte, depth int) {
	if depth == 0 {
		child, ok := n.children[letter]
		n.children = make(map[byte]*Node, 1)
		if ok {
			n.children[letter] = child
		}
		return
	}
	for _, child := range n.children {
		child.Retain(letter, depth-1)
	}
}

// PurgeBranches removes, post-order, every subtree that ran out of children before
// reaching targetDepth edges from n. Must run before Update after Remove/Retain.
func (n *Node) PurgeBranches(targetDepth int) {
	n.purge(0, targetDepth)
}

func (n *Node) purge(depth, target int) {
	if depth >= target {
		return
	}
	for l, child := range n.children {
		child.purge(depth+1, target)
		if len(child.children) == 0 && depth+1 < target {
			delete(n.children, l)
		}
	}
}

// Update recomputes weights bottom-up: an internal node weighs the sum of its
// children, a leaf weighs one.
func (n *Node) Update() {
	sum := 0
	for _, child := range n.children {
		child.Update()
		sum += child.weight
	}
	if sum == 0 {
		sum = 1
	}
	n.weight = sum
}

// Next returns the heaviest child, or nil for a leaf. Ties between maximal-weight
// children go to the lowest letter so guess sequences are reproducible.
func (n *Node) Next() *Node {
	var best *Node
	for _, child := range n.children {
		if best == nil || child.weight > best.weight ||
			(child.weight == best.weight && child.letter < best.letter) {
			best = child
		}
	}
	return best
}

// NextPlacing descends to the first letter of pending that is a child of n and
// returns pending without that single occurrence. When no pending letter fits it
// falls back to Next and returns pending unchanged.
func (n *Node) NextPlacing(pending []byte) (*Node, []byte) {
	for i, l := range pending {
		if child, ok := n.children[l]; ok {
			rest := make([]byte, 0, len(pending)-1)
			rest = append(rest, pending[:i]...)
			rest = append(rest, pending[i+1:]...)
			return child, rest
		}
	}
	return n.Next(), pending
}

// Guess walks the heaviest path from n down to a leaf and returns its letters.
func (n *Node) Guess() string {
	buf := make([]byte, 0, 8)
	for node := n.Next(); node != nil; node = node.Next() {
		buf = append(buf, node.letter)
	}
	return string(buf)
}

// GuessPlacing is Guess with NextPlacing at every level. It returns the pending
// letters that could not be placed.
func (n *Node) GuessPlacing(pending []byte) (string, []byte) {
	buf := make([]byte, 0, 8)
	node := n
	for len(node.children) > 0 {
		node, pending = node.NextPlacing(pending)
		buf = append(buf, node.letter)
	}
	return string(buf), pending
}

// Copy returns a deep structural clone of the subtree rooted at n.
func (n *Node) Copy() *Node {
	c := &Node{letter: n.letter, weight: n.weight, children: make(map[byte]*Node, len(n.children))}
	for l, child := range n.children {
		c.children[l] = child.Copy()
	}
	return c
}

// RemoveWord decrements every node on word's exact path below n and unlinks
// nodes that reach zero, so the word can no longer be produced. When the path is
// not fully present it reports false and the tree is left untouched.
func (n *Node) RemoveWord(word string) bool {
	path := make([]*Node, 0, len(word)+1)
	path = append(path, n)
	for i := 0; i < len(word); i++ {
		child, ok := path[i].children[word[i]]
		if !ok {
			return false
		}
		path = append(path, child)
	}
	for i := 0; i < len(word); i++ {
		child := path[i+1]
		child.weight--
		if child.weight <= 0 {
			delete(path[i].children, word[i])
		}
	}
	return true
}

// Words enumerates every root-to-leaf path below n in lexical order.
func (n *Node) Words() []string {
	var out []string
	var walk func(node *Node, prefix []byte)
	walk = func(node *Node, prefix []byte) {
		if len(node.children) == 0 {
			if len(prefix) > 0 {
				out = append(out, string(prefix))
			}
			return
		}
		for _, l := range node.Letters() {
			walk(node.children[l], append(prefix, l))
		}
	}
	walk(n, make([]byte, 0, 8))
	return out
}
