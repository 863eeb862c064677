package bst

import "github.com/shivamMg/ppds/tree"

// printNode adapts a Node to the ppds tree printer. A nil n stands in for the
// missing side of a node that has exactly one child.
type printNode[T Number] struct {
	n *Node[T]
}

func (p printNode[T]) Data() interface{} {
	if p.n == nil {
		return "nil"
	}
	return p.n.Value
}

func (p printNode[T]) Children() (children []tree.Node) {
	if p.n == nil || (p.n.Left == nil && p.n.Right == nil) {
		return
	}
	return []tree.Node{printNode[T]{p.n.Left}, printNode[T]{p.n.Right}}
}

// String draws the tree with the left child listed before the right one.
func (t *Tree[T]) String() string {
	if t.isEmpty() {
		return "(empty)"
	}
	return tree.Sprint(printNode[T]{t.Root})
}
