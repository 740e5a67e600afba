package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes case results in the PASS/FAIL layout.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	pass     lipgloss.Style
	fail     lipgloss.Style
	plain    bool
}

// NewPrinter returns a Printer writing to w. With color false no escape
// sequences are emitted; otherwise the terminal behind w decides how much
// colour is used.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		renderer: r,
		pass:     r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:     r.NewStyle().Foreground(lipgloss.Color("1")),
		plain:    !color,
	}
}

func (p *Printer) paint(ok bool, s string) string {
	if p.plain {
		return s
	}
	if ok {
		return p.pass.Render(s)
	}
	return p.fail.Render(s)
}

// Print writes every result of report followed by the summary line.
func (p *Printer) Print(report Report) error {
	for i, res := range report.Results {
		if err := p.printResult(i+1, res); err != nil {
			return err
		}
	}
	return p.Summary(report)
}

func (p *Printer) printResult(caseNum int, res Result) error {
	status := "FAIL"
	if res.OK {
		status = "PASS"
	}
	header := fmt.Sprintf("[%s] Case %d", status, caseNum)
	if res.Case.Name != "" {
		header += " " + res.Case.Name
	}

	got := res.Got
	if res.Err != nil {
		got = fmt.Sprintf("%s (%v)", res.Got, res.Err)
	}

	_, err := fmt.Fprintf(p.w, "%s\n  input:    %s\n  got:      %s\n  expected: %s\n\n",
		p.paint(res.OK, header), res.Case.Input, got, res.Case.Expected)
	return err
}

// Summary writes the "passed X/Y" line for report.
func (p *Printer) Summary(report Report) error {
	line := fmt.Sprintf("%s: passed %d/%d", report.Problem, report.Passed(), len(report.Results))
	_, err := fmt.Fprintln(p.w, p.paint(report.OK(), line))
	return err
}
