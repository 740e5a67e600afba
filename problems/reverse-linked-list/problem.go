package reverselinkedlist

import (
	_ "embed"
	"strings"

	"github.com/brettbar/leetcli/internal/caseio"
	"github.com/brettbar/leetcli/internal/listnode"
)

//go:embed tests.csv
var testsCSV string

// Problem adapts ReverseList to the case runner.
type Problem struct{}

func (Problem) Slug() string  { return "reverse-linked-list" }
func (Problem) Title() string { return "Reverse Linked List" }

func (Problem) Cases() ([]caseio.Case, error) {
	return caseio.Read(strings.NewReader(testsCSV))
}

// Solve parses "head=[...]" and returns the reversed list.
func (Problem) Solve(input string) (string, error) {
	args, err := caseio.ParseArgs(input)
	if err != nil {
		return "", err
	}
	vals, err := args.IntSlice("head")
	if err != nil {
		return "", err
	}
	return caseio.FormatIntSlice(listnode.ToSlice(ReverseList(listnode.FromSlice(vals)))), nil
}
