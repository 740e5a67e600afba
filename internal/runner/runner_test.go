package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/brettbar/leetcli/internal/caseio"
	reversenodesinkgroup "github.com/brettbar/leetcli/problems/reverse-nodes-in-k-group"
)

var errBoom = errors.New("boom")

// echoProblem returns its input, or fails on "boom".
type echoProblem struct{ slug string }

func (e echoProblem) Slug() string  { return e.slug }
func (e echoProblem) Title() string { return strings.ToUpper(e.slug) }

func (e echoProblem) Cases() ([]caseio.Case, error) {
	return []caseio.Case{{Name: "one", Input: "[1]", Expected: "[1]"}}, nil
}

func (e echoProblem) Solve(input string) (string, error) {
	if input == "boom" {
		return "", errBoom
	}
	return input, nil
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(echoProblem{"b"}, echoProblem{"a"})
	require.NoError(t, err)

	p, err := r.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Slug())

	_, err = r.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownProblem)

	err = r.Register(echoProblem{"a"})
	require.ErrorIs(t, err, ErrDuplicateProblem)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Slug())
	assert.Equal(t, "b", all[1].Slug())
}

func TestNewRegistryDuplicate(t *testing.T) {
	_, err := NewRegistry(echoProblem{"a"}, echoProblem{"a"})
	require.ErrorIs(t, err, ErrDuplicateProblem)
}

func TestRun(t *testing.T) {
	cases := []caseio.Case{
		{Name: "match", Input: "[1, 2]", Expected: "[1,2]"},
		{Name: "mismatch", Input: "[1]", Expected: "[2]"},
		{Name: "expected error", Input: "boom", Expected: ExpectError},
		{Name: "unexpected error", Input: "boom", Expected: "[]"},
		{Name: "scalar", Input: "true", Expected: " true"},
	}

	core, logs := observer.New(zapcore.DebugLevel)
	report := New(zap.New(core)).Run(echoProblem{"echo"}, cases)

	require.Len(t, report.Results, len(cases))
	assert.Equal(t, "echo", report.Problem)

	oks := make([]bool, len(report.Results))
	for i, res := range report.Results {
		oks[i] = res.OK
	}
	assert.Equal(t, []bool{true, false, true, false, true}, oks)
	assert.ErrorIs(t, report.Results[3].Err, errBoom)
	assert.Equal(t, ExpectError, report.Results[3].Got)

	assert.Equal(t, 3, report.Passed())
	assert.False(t, report.OK())

	assert.Equal(t, len(cases), logs.FilterMessage("case finished").Len())
	summary := logs.FilterMessage("problem finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(3), summary[0].ContextMap()["passed"])
}

func TestRunEmptyIsOK(t *testing.T) {
	report := New(nil).Run(echoProblem{"echo"}, nil)
	assert.True(t, report.OK())
	assert.Zero(t, report.Passed())
}

func TestPrinter(t *testing.T) {
	report := Report{
		Problem: "echo",
		Results: []Result{
			{Case: caseio.Case{Name: "good", Input: "[1]", Expected: "[1]"}, Got: "[1]", OK: true},
			{Case: caseio.Case{Input: "boom", Expected: "[]"}, Got: ExpectError, Err: errBoom},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Print(report))

	out := buf.String()
	assert.Contains(t, out, "[PASS] Case 1 good\n")
	assert.Contains(t, out, "[FAIL] Case 2\n")
	assert.Contains(t, out, "  got:      error (boom)\n")
	assert.Contains(t, out, "  expected: []\n")
	assert.True(t, strings.HasSuffix(out, "echo: passed 1/2\n"))
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinterColor(t *testing.T) {
	report := Report{
		Problem: "echo",
		Results: []Result{
			{Case: caseio.Case{Name: "good", Input: "[1]", Expected: "[1]"}, Got: "[1]", OK: true},
			{Case: caseio.Case{Name: "bad", Input: "[2]", Expected: "[3]"}, Got: "[2]"},
		},
	}

	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.renderer.SetColorProfile(termenv.ANSI)
	require.NoError(t, p.Print(report))

	out := buf.String()
	assert.Contains(t, out, "\x1b[32m[PASS] Case 1 good")
	assert.Contains(t, out, "\x1b[31m[FAIL] Case 2 bad")
	assert.Contains(t, out, "\x1b[31mecho: passed 1/2")
}

func TestRunExpectedErrors(t *testing.T) {
	cases := []caseio.Case{
		{Name: "invalid size", Input: "head=[1,2]; k=0", Expected: ExpectError},
		{Name: "pinned message", Input: "head=[1,2]; k=0", Expected: "error: group size"},
		{Name: "wrong message", Input: "head=[1,2]; k=0", Expected: "error: no such text"},
		{Name: "misspelled argument", Input: "head=[1,2]; kk=0", Expected: ExpectError},
		{Name: "unparsable argument", Input: "head=[1,x]; k=0", Expected: ExpectError},
		{Name: "error expected but solved", Input: "head=[1,2]; k=2", Expected: ExpectError},
	}

	report := New(nil).Run(reversenodesinkgroup.Problem{}, cases)
	require.Len(t, report.Results, len(cases))

	oks := make([]bool, len(report.Results))
	for i, res := range report.Results {
		oks[i] = res.OK
	}
	assert.Equal(t, []bool{true, true, false, false, false, false}, oks)
	assert.ErrorIs(t, report.Results[0].Err, reversenodesinkgroup.ErrInvalidGroupSize)
	assert.ErrorIs(t, report.Results[3].Err, caseio.ErrMissingArg)
	assert.ErrorIs(t, report.Results[4].Err, caseio.ErrBadInput)
	assert.Equal(t, "[2,1]", report.Results[5].Got)
}
