// gaddag.go
// GADDAG dictionary construction and lookup.
//
// Grounded on the reverse-prefix/PIVOT/suffix insertion scheme of
// bluebear94/odnocam's gaddagmaker (other_examples), with a bit-packed
// child layout in the style of the teacher's dawg.go BitMap/popcount
// encoding, generalized from 5 bits (one DAWG alphabet) to the 28 edge
// indices a GADDAG node needs (26 letters + blank + PIVOT).

package wordplay

import (
	"math/bits"
	"strings"
)

// gaddagNode is one trie node. childrenMask has a bit set for every
// edge index that has a child; children holds those children packed
// in ascending edge-index order, so a child's slot is the popcount of
// the mask bits below its edge index.
type gaddagNode struct {
	isWord       bool
	childrenMask uint32
	children     []*gaddagNode
}

func (n *gaddagNode) getChild(edge int) *gaddagNode {
	bit := uint32(1) << uint(edge)
	if n.childrenMask&bit == 0 {
		return nil
	}
	slot := bits.OnesCount32(n.childrenMask & (bit - 1))
	return n.children[slot]
}

// ensureChild returns the child at edge, creating it (and reports
// whether it created one) if it didn't already exist.
func (n *gaddagNode) ensureChild(edge int) (child *gaddagNode, created bool) {
	bit := uint32(1) << uint(edge)
	slot := bits.OnesCount32(n.childrenMask & (bit - 1))
	if n.childrenMask&bit != 0 {
		return n.children[slot], false
	}
	child = &gaddagNode{}
	n.children = append(n.children, nil)
	copy(n.children[slot+1:], n.children[slot:])
	n.children[slot] = child
	n.childrenMask |= bit
	return child, true
}

// Gaddag is an immutable word dictionary encoded as a GADDAG: for a
// word w of length n, inserting it stores, for every split point
// i in [0, n], the path reverse(w[0:i])·PIVOT·w[i:n], terminating at
// a node with isWord set. Checking whether w is a legal word looks up
// the reverse(w)·PIVOT path (the i = n split) and tests isWord on the
// final node, which the move generator's forward extension also relies
// on directly.
type Gaddag struct {
	root      *gaddagNode
	wordCount int
	nodeCount int
}

// FromWordlist builds a Gaddag from an iterable word list. Words are
// upper-cased and trimmed; blank and empty entries are skipped.
func FromWordlist(words []string) *Gaddag {
	g := &Gaddag{root: &gaddagNode{}}
	g.nodeCount = 1
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		g.insertWord(w)
		g.wordCount++
	}
	Logger.Printf("gaddag: built from %d words, %d nodes", g.wordCount, g.nodeCount)
	return g
}

func (g *Gaddag) insertWord(w string) {
	letters := []byte(w)
	n := len(letters)
	path := make([]int, 0, n+1)
	for split := 0; split <= n; split++ {
		path = path[:0]
		for i := split - 1; i >= 0; i-- {
			path = append(path, tileIndex(letters[i]))
		}
		path = append(path, pivotIndex)
		for i := split; i < n; i++ {
			path = append(path, tileIndex(letters[i]))
		}
		g.insertPath(path)
	}
}

func (g *Gaddag) insertPath(path []int) {
	node := g.root
	for _, edge := range path {
		child, created := node.ensureChild(edge)
		if created {
			g.nodeCount++
		}
		node = child
	}
	node.isWord = true
}

// IsWord reports whether word is present in the dictionary.
func (g *Gaddag) IsWord(word string) bool {
	word = strings.ToUpper(word)
	if word == "" {
		return false
	}
	letters := []byte(word)
	node := g.root
	for i := len(letters) - 1; i >= 0; i-- {
		child := node.getChild(tileIndex(letters[i]))
		if child == nil {
			return false
		}
		node = child
	}
	pivotChild := node.getChild(pivotIndex)
	return pivotChild != nil && pivotChild.isWord
}

// WordCount returns the number of non-blank entries inserted, counting
// a word listed more than once once per listing.
func (g *Gaddag) WordCount() int {
	return g.wordCount
}

// NodeCount returns the number of trie nodes allocated.
func (g *Gaddag) NodeCount() int {
	return g.nodeCount
}
