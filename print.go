package trie

import (
	"strconv"

	"github.com/xlab/treeprint"
)

// Dump renders the node tree as indented text for debugging. Children
// appear in lexicographic token order; nodes terminating a stored key
// are marked with a bullet, and nodes carrying a payload with "+data".
func (t *Trie[T]) Dump() string {
	tree := treeprint.NewWithRoot(t.label())
	t.walk(tree)
	return tree.String()
}

func (t *Trie[T]) String() string { return t.Dump() }

func (t *Trie[T]) walk(tree treeprint.Tree) {
	for _, token := range t.ChildTokens() {
		child := t.children[token]
		if len(child.children) == 0 {
			tree.AddNode(child.label())
			continue
		}
		child.walk(tree.AddBranch(child.label()))
	}
}

func (t *Trie[T]) label() string {
	label := strconv.Quote(t.token)
	if t.isKeyEnd {
		label += " •"
	}
	if t.hasData {
		label += " +data"
	}
	return label
}
