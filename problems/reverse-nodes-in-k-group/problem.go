package reversenodesinkgroup

import (
	_ "embed"
	"strings"

	"github.com/brettbar/leetcli/internal/caseio"
	"github.com/brettbar/leetcli/internal/listnode"
)

//go:embed tests.csv
var testsCSV string

// Problem adapts ReverseKGroup to the case runner.
type Problem struct{}

func (Problem) Slug() string  { return "reverse-nodes-in-k-group" }
func (Problem) Title() string { return "Reverse Nodes in k-Group" }

// Cases returns the embedded case table.
func (Problem) Cases() ([]caseio.Case, error) {
	return caseio.Read(strings.NewReader(testsCSV))
}

// Solve parses "head=[...]; k=n" and returns the transformed list.
func (Problem) Solve(input string) (string, error) {
	args, err := caseio.ParseArgs(input)
	if err != nil {
		return "", err
	}
	vals, err := args.IntSlice("head")
	if err != nil {
		return "", err
	}
	k, err := args.Int("k")
	if err != nil {
		return "", err
	}

	head, err := ReverseKGroup(listnode.FromSlice(vals), k)
	if err != nil {
		return "", err
	}
	return caseio.FormatIntSlice(listnode.ToSlice(head)), nil
}
