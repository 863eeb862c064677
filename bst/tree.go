package bst

import "golang.org/x/exp/constraints"

// Number is the set of value types a tree can hold. Values must be signed so
// that the distance |target - value| can be computed by subtraction.
type Number interface {
	constraints.Signed | constraints.Float
}

// Node is one element of a binary search tree. Every value in Left is <= Value
// and every value in Right is >= Value; the functions in this package assume
// but do not check this.
type Node[T Number] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

func NewNode[T Number](value T, left *Node[T], right *Node[T]) *Node[T] {
	return &Node[T]{Value: value, Left: left, Right: right}
}

func Leaf[T Number](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Tree wraps the root of a search tree, which may be nil.
type Tree[T Number] struct {
	Root *Node[T]
}

func NewTree[T Number](root *Node[T]) *Tree[T] {
	return &Tree[T]{Root: root}
}

func (t *Tree[T]) isEmpty() bool {
	return t == nil || t.Root == nil
}
