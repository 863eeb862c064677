package main

import (
	"fmt"
	"strconv"

	"bst_code/bst"
)

// insert places value below n; values equal to a node go to its right. Keep
// in step with the insert helper in bst/helpers_test.go.
func insert(n *bst.Node[int64], value int64) *bst.Node[int64] {
	if n == nil {
		return bst.Leaf(value)
	}
	if value < n.Value {
		n.Left = insert(n.Left, value)
	} else {
		n.Right = insert(n.Right, value)
	}
	return n
}

// parseTree inserts args into a fresh tree in the order given.
func parseTree(args []string) (*bst.Tree[int64], error) {
	var root *bst.Node[int64]
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q: %v", bst.ErrInvalidArgument, arg, err)
		}
		root = insert(root, v)
	}
	return bst.NewTree(root), nil
}
