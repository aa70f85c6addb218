package spectree

import "github.com/goose-lang/primitive"

type bound struct {
	key float64
	set bool
}

// checkNode asserts the invariants of the subtree rooted at n, where every key
// must lie strictly between lo and hi, and returns the number of insertions
// it holds.
func (n *node) checkNode(lo, hi bound) uint64 {
	if n == nil {
		return 0
	}
	primitive.Assert(n.count >= 1)
	primitive.Assert(!lo.set || lo.key < n.energy)
	primitive.Assert(!hi.set || n.energy < hi.key)
	self := bound{key: n.energy, set: true}
	left := n.left.checkNode(lo, self)
	right := n.right.checkNode(self, hi)
	primitive.Assert(n.subtreeCount == n.count+left+right)
	return n.subtreeCount
}

// Check panics if the tree violates search-tree ordering, has a node with a
// zero count, or has a subtree count that is not the sum of its node's count
// and its children's subtree counts.
func (t *Tree) Check() {
	t.root.checkNode(bound{}, bound{})
}
