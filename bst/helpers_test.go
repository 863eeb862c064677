package bst_test

import (
	"bst_code/bst"

	"pgregory.net/rapid"
)

// insert adds value below n, sending duplicates to the right. It mirrors the
// tree builder in cmd/bstwalk/tree.go.
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

func buildTree(values ...int64) *bst.Tree[int64] {
	var root *bst.Node[int64]
	for _, v := range values {
		root = insert(root, v)
	}
	return bst.NewTree(root)
}

// exampleTree is
//
//	   5
//	 3   8
//	1 4 7 9
func exampleTree() *bst.Tree[int64] {
	return buildTree(5, 3, 8, 1, 4, 7, 9)
}

// TreeGenerator draws non-empty trees with small values so that duplicates and
// ties are common.
func TreeGenerator() *rapid.Generator[*bst.Tree[int64]] {
	return rapid.Custom(func(t *rapid.T) *bst.Tree[int64] {
		values := rapid.SliceOfN(rapid.Int64Range(-50, 50), 1, 40).Draw(t, "values")
		return buildTree(values...)
	})
}
