package spectree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

func (n *node) label() string {
	return fmt.Sprintf("%v (%d/%d)", n.energy, n.count, n.subtreeCount)
}

func (n *node) addChild(tree treeprint.Tree, side string) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		tree.AddMetaNode(side, n.label())
		return
	}
	branch := tree.AddMetaBranch(side, n.label())
	n.left.addChild(branch, "L")
	n.right.addChild(branch, "R")
}

// String renders the shape of the tree, one node per line, labelled
// "energy (count/subtree count)" with children marked L or R.
func (t *Tree) String() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tree := treeprint.NewWithRoot(t.root.label())
	t.root.left.addChild(tree, "L")
	t.root.right.addChild(tree, "R")
	return tree.String()
}
