package binarytreeinordertraversal

import (
	_ "embed"
	"strings"

	"github.com/brettbar/leetcli/internal/caseio"
	"github.com/brettbar/leetcli/internal/treenode"
)

//go:embed tests.csv
var testsCSV string

// Problem adapts InorderTraversal to the case runner.
type Problem struct{}

func (Problem) Slug() string  { return "binary-tree-inorder-traversal" }
func (Problem) Title() string { return "Binary Tree Inorder Traversal" }

func (Problem) Cases() ([]caseio.Case, error) {
	return caseio.Read(strings.NewReader(testsCSV))
}

// Solve parses "root=[...]" in level order.
func (Problem) Solve(input string) (string, error) {
	args, err := caseio.ParseArgs(input)
	if err != nil {
		return "", err
	}
	vals, err := args.NullableIntSlice("root")
	if err != nil {
		return "", err
	}
	return caseio.FormatIntSlice(InorderTraversal(treenode.FromLevelOrder(vals))), nil
}
