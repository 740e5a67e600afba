// Package runner runs a problem's case table against its solution and
// reports which cases pass.
package runner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/brettbar/leetcli/internal/caseio"
)

// ExpectError is the expected-output literal for cases that must fail. It
// may be followed by ": <substring>" to pin the error message.
const ExpectError = "error"

var (
	// ErrUnknownProblem is returned by Lookup for an unregistered slug.
	ErrUnknownProblem = errors.New("unknown problem")
	// ErrDuplicateProblem is returned by Register when the slug is taken.
	ErrDuplicateProblem = errors.New("problem already registered")
)

// Problem is one catalogue entry.
type Problem interface {
	Slug() string
	Title() string
	// Cases returns the case table shipped with the problem.
	Cases() ([]caseio.Case, error)
	// Solve runs the solution on a case input and renders its answer.
	Solve(input string) (string, error)
}

// Registry maps slugs to problems.
type Registry struct {
	problems map[string]Problem
}

// NewRegistry returns a registry holding ps.
func NewRegistry(ps ...Problem) (*Registry, error) {
	r := &Registry{problems: make(map[string]Problem, len(ps))}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds p to the registry.
func (r *Registry) Register(p Problem) error {
	if _, ok := r.problems[p.Slug()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProblem, p.Slug())
	}
	r.problems[p.Slug()] = p
	return nil
}

// Lookup returns the problem registered under slug.
func (r *Registry) Lookup(slug string) (Problem, error) {
	p, ok := r.problems[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProblem, slug)
	}
	return p, nil
}

// All returns every registered problem sorted by slug.
func (r *Registry) All() []Problem {
	out := make([]Problem, 0, len(r.problems))
	for _, p := range r.problems {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug() < out[j].Slug() })
	return out
}

// Result is the outcome of one case.
type Result struct {
	Case caseio.Case
	Got  string
	Err  error
	OK   bool
}

// Report collects the results of one problem run.
type Report struct {
	Problem string
	Results []Result
}

// Passed counts passing cases.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Passed() == len(r.Results) }

// Runner executes case tables.
type Runner struct {
	logger *zap.Logger
}

// New returns a Runner logging to logger. A nil logger disables logging.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run solves every case in order. A failing case does not stop the run.
func (r *Runner) Run(p Problem, cases []caseio.Case) Report {
	report := Report{Problem: p.Slug(), Results: make([]Result, 0, len(cases))}

	for i, c := range cases {
		res := evaluate(p, c)
		report.Results = append(report.Results, res)
		r.logger.Debug("case finished",
			zap.String("problem", p.Slug()),
			zap.Int("case", i+1),
			zap.String("name", c.Name),
			zap.Bool("ok", res.OK),
			zap.Error(res.Err))
	}

	r.logger.Info("problem finished",
		zap.String("problem", p.Slug()),
		zap.Int("passed", report.Passed()),
		zap.Int("total", len(report.Results)))
	return report
}

func evaluate(p Problem, c caseio.Case) Result {
	res := Result{Case: c}
	got, err := p.Solve(c.Input)
	if err != nil {
		res.Err = err
		res.Got = ExpectError
		res.OK = expectsError(c.Expected, err)
		return res
	}
	res.Got = got
	res.OK = caseio.Normalize(got) == caseio.Normalize(c.Expected)
	return res
}

// expectsError reports whether err satisfies an expected value of
// "error" or "error: <substring>". A malformed input never does.
func expectsError(expected string, err error) bool {
	if errors.Is(err, caseio.ErrBadInput) {
		return false
	}
	if expected == ExpectError {
		return true
	}
	want, ok := strings.CutPrefix(expected, ExpectError+":")
	if !ok {
		return false
	}
	return strings.Contains(err.Error(), strings.TrimSpace(want))
}
