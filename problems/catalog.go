// Package problems lists every solved problem in the catalogue.
package problems

import (
	binarytreeinordertraversal "github.com/brettbar/leetcli/problems/binary-tree-inorder-traversal"
	reverselinkedlist "github.com/brettbar/leetcli/problems/reverse-linked-list"
	reversenodesinkgroup "github.com/brettbar/leetcli/problems/reverse-nodes-in-k-group"
	twosum "github.com/brettbar/leetcli/problems/two-sum"

	"github.com/brettbar/leetcli/internal/runner"
)

// All returns one instance of every catalogue problem.
func All() []runner.Problem {
	return []runner.Problem{
		twosum.Problem{},
		binarytreeinordertraversal.Problem{},
		reverselinkedlist.Problem{},
		reversenodesinkgroup.Problem{},
	}
}

// Catalog returns a registry holding every catalogue problem.
func Catalog() (*runner.Registry, error) {
	return runner.NewRegistry(All()...)
}
