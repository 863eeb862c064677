package bst

import (
	"fmt"

	"github.com/goose-lang/primitive"
)

func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// intGap returns |a - b| for integer a and b. The subtraction is done on the
// two's complement bit patterns, which is exact for any pair of 64-bit or
// narrower signed values.
func intGap[T Number](a T, b T) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

func floatGap[T Number](a T, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// closer reports whether candidate is strictly nearer to target than best.
func closer[T Number](target T, candidate T, best T) bool {
	if isFloat[T]() {
		return floatGap(target, candidate) < floatGap(target, best)
	}
	return intGap(target, candidate) < intGap(target, best)
}

// FindClosestValue returns the value in t nearest to target.
//
// The search descends from the root toward target and only replaces its
// current best when a node is strictly closer, so among equally distant values
// the one met first on the path wins. For the tree 5 -> (3, 8 -> (7, 9)) and
// target 6, the answer is 5 and not 7.
func FindClosestValue[T Number](t *Tree[T], target T) (T, error) {
	if t.isEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	var closest = t.Root.Value
	var n = t.Root
	for n != nil {
		if closer(target, n.Value, closest) {
			closest = n.Value
		}
		if target < n.Value {
			n = n.Left
		} else if target > n.Value {
			n = n.Right
		} else {
			break
		}
	}
	return closest, nil
}

// FindKthLargestValue returns the k-th largest value in t, where k = 1 is the
// maximum and k = t.Size() is the minimum. Duplicates count separately.
//
// The whole tree is collected in order before indexing.
func FindKthLargestValue[T Number](t *Tree[T], k uint64) (T, error) {
	var zero T
	if t.isEmpty() {
		return zero, ErrEmptyTree
	}
	values := t.InOrder()
	l := uint64(len(values))
	if k == 0 || k > l {
		return zero, fmt.Errorf("%w: k = %d is out of range [1, %d]",
			ErrInvalidArgument, k, l)
	}
	primitive.Assert(l == t.Size())
	return values[l-k], nil
}
