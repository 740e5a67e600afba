package twosum

import (
	_ "embed"
	"strings"

	"github.com/brettbar/leetcli/internal/caseio"
)

//go:embed tests.csv
var testsCSV string

// Problem adapts TwoSum to the case runner.
type Problem struct{}

func (Problem) Slug() string  { return "two-sum" }
func (Problem) Title() string { return "Two Sum" }

func (Problem) Cases() ([]caseio.Case, error) {
	return caseio.Read(strings.NewReader(testsCSV))
}

// Solve parses "nums=[...]; target=n".
func (Problem) Solve(input string) (string, error) {
	args, err := caseio.ParseArgs(input)
	if err != nil {
		return "", err
	}
	nums, err := args.IntSlice("nums")
	if err != nil {
		return "", err
	}
	target, err := args.Int("target")
	if err != nil {
		return "", err
	}
	return caseio.FormatIntSlice(TwoSum(nums, target)), nil
}
