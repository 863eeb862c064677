package bst

import "github.com/goose-lang/std"

// parallelDepth bounds how many levels of InOrderParallel spawn a thread for
// the left subtree.
const parallelDepth = uint64(4)

func collectInOrder[T Number](root *Node[T], out []T) []T {
	s := newStack[T]()
	s.pushLeftSpine(root)
	for {
		n, ok := s.pop()
		if !ok {
			break
		}
		out = append(out, n.Value)
		s.pushLeftSpine(n.Right)
	}
	return out
}

// InOrder returns every value in the tree, visiting the left subtree, then the
// node, then the right subtree. For a valid search tree the result is
// non-decreasing. Duplicates are kept.
func (t *Tree[T]) InOrder() []T {
	if t == nil {
		return []T{}
	}
	return collectInOrder(t.Root, []T{})
}

func inOrderParallel[T Number](n *Node[T], depth uint64) []T {
	if n == nil {
		return []T{}
	}
	if depth == 0 {
		return collectInOrder(n, []T{})
	}
	var left []T
	h := std.Spawn(func() {
		left = inOrderParallel(n.Left, depth-1)
	})
	right := inOrderParallel(n.Right, depth-1)
	h.Join()

	out := make([]T, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, n.Value)
	return append(out, right...)
}

// InOrderParallel returns the same sequence as InOrder, collecting the
// subtrees near the root concurrently.
func (t *Tree[T]) InOrderParallel() []T {
	if t == nil {
		return []T{}
	}
	return inOrderParallel(t.Root, parallelDepth)
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() uint64 {
	if t == nil {
		return 0
	}
	var count = uint64(0)
	s := newStack[T]()
	s.pushLeftSpine(t.Root)
	for {
		n, ok := s.pop()
		if !ok {
			break
		}
		count = std.SumAssumeNoOverflow(count, 1)
		s.pushLeftSpine(n.Right)
	}
	return count
}
