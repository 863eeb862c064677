// Command bstwalk builds a binary search tree from its arguments and queries
// it.
//
//	bstwalk closest --target 6 5 3 8 1 4 7 9
//	bstwalk kth --k 3 5 3 8 1 4 7 9
//	bstwalk print 5 3 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
