// Package spectree stores a multiset of energy measurements in an unbalanced
// binary search tree. Each distinct energy has one node carrying the number
// of times it was inserted, and every node tracks the total number of
// insertions in its subtree.
//
// A Tree is not safe for concurrent use; see Locked.
package spectree

import "github.com/goose-lang/std"

// Entry is one distinct energy and the number of times it was inserted.
type Entry struct {
	Energy float64
	Count  uint64
}

type node struct {
	energy float64
	count  uint64
	// total insertions in this subtree, including count
	subtreeCount uint64
	left         *node
	right        *node
}

func newNode(energy float64) *node {
	return &node{energy: energy, count: 1, subtreeCount: 1}
}

func (n *node) size() uint64 {
	if n == nil {
		return 0
	}
	return n.subtreeCount
}

func (n *node) fixSize() {
	n.subtreeCount = std.SumAssumeNoOverflow(n.count,
		std.SumAssumeNoOverflow(n.left.size(), n.right.size()))
}

// insert returns the root of the subtree after adding one occurrence of
// energy.
func (n *node) insert(energy float64) *node {
	if n == nil {
		return newNode(energy)
	}
	// modify in-place
	if energy < n.energy {
		n.left = n.left.insert(energy)
	} else if energy > n.energy {
		n.right = n.right.insert(energy)
	} else {
		n.count++
	}
	n.fixSize()
	return n
}

func (n *node) rangeQuery(low, high float64) uint64 {
	if n == nil {
		return 0
	}
	if n.energy < low {
		return n.right.rangeQuery(low, high)
	}
	if n.energy > high {
		return n.left.rangeQuery(low, high)
	}
	return std.SumAssumeNoOverflow(n.count,
		std.SumAssumeNoOverflow(n.left.rangeQuery(low, high), n.right.rangeQuery(low, high)))
}

func (n *node) height() uint64 {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Tree is a multiset of energies. The zero value is an empty tree.
type Tree struct {
	root *node
}

func New() *Tree {
	return &Tree{}
}

// Insert adds one occurrence of energy.
//
// Any float64 is accepted. The ordering of NaN relative to other keys is
// not defined, so callers should filter such values out beforehand.
func (t *Tree) Insert(energy float64) {
	t.root = t.root.insert(energy)
}

// Inorder returns every distinct energy with its count, in strictly
// ascending order of energy.
func (t *Tree) Inorder() []Entry {
	var entries = []Entry{}
	// path holds the ancestors still to be visited, nearest last
	path := pushLeft(nil, t.root)
	for len(path) > 0 {
		n := path[len(path)-1]
		path = path[:len(path)-1]
		entries = append(entries, Entry{Energy: n.energy, Count: n.count})
		path = pushLeft(path, n.right)
	}
	return entries
}

// pushLeft appends n and every node on its left spine to path.
func pushLeft(path []*node, n *node) []*node {
	for n != nil {
		path = append(path, n)
		n = n.left
	}
	return path
}

// RangeQuery returns the number of inserted occurrences v with
// low <= v <= high. It is 0 when low > high.
func (t *Tree) RangeQuery(low, high float64) uint64 {
	return t.root.rangeQuery(low, high)
}

// Len returns the total number of insertions.
func (t *Tree) Len() uint64 {
	return t.root.size()
}

// Height returns the number of nodes on the longest root-to-leaf path. The
// tree is not balanced, so sorted input gives a height equal to the number of
// distinct energies.
func (t *Tree) Height() uint64 {
	return t.root.height()
}
