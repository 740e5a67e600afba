// Package caseio reads problem case tables and parses the LeetCode-style
// literals stored in them.
//
// A case table is a CSV file with the header row name,input,expected and
// at least one data row. Inputs are ';'-separated name=value pairs such as
// "head=[1,2,3]; k=2"; a bare value with no name is also accepted.
package caseio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoCases is returned when a case table has a header but no rows.
	ErrNoCases = errors.New("no test rows")
	// ErrBadInput wraps every failure to parse a case input, so callers
	// can tell a malformed table apart from an error raised by a solution.
	ErrBadInput = errors.New("bad input")
	// ErrMissingArg is returned when a named input argument is absent.
	ErrMissingArg = errors.New("missing argument")
)

const caseFields = 3

// Case is one row of a case table.
type Case struct {
	Name     string
	Input    string
	Expected string
}

// ReadFile reads the case table at path.
func ReadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cases, nil
}

// Read parses a case table, skipping the header row.
func Read(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = caseFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, ErrNoCases
	}

	cases := make([]Case, 0, len(records)-1)
	for _, row := range records[1:] {
		cases = append(cases, Case{
			Name:     strings.TrimSpace(row[0]),
			Input:    strings.TrimSpace(row[1]),
			Expected: strings.TrimSpace(row[2]),
		})
	}
	return cases, nil
}

// ParseIntSlice parses a literal such as "[1, 2, 3]". "[]" yields an empty slice.
func ParseIntSlice(s string) ([]int, error) {
	raw := splitList(s)
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseNullableIntSlice parses a level-order literal such as "[1,null,2]",
// mapping null to a nil entry.
func ParseNullableIntSlice(s string) ([]*int, error) {
	raw := splitList(s)
	out := make([]*int, 0, len(raw))
	for _, v := range raw {
		if strings.EqualFold(v, "null") {
			out = append(out, nil)
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, nil
}

// FormatIntSlice renders vals in the canonical "[1,2,3]" form.
func FormatIntSlice(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Normalize rewrites an int slice literal into canonical form. Anything
// that is not an int slice is returned trimmed.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return s
	}
	vals, err := ParseIntSlice(s)
	if err != nil {
		return s
	}
	return FormatIntSlice(vals)
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	raw := strings.Split(s, ",")
	for i := range raw {
		raw[i] = strings.TrimSpace(raw[i])
	}
	return raw
}

// Args holds the named values of one case input.
type Args map[string]string

// ParseArgs splits "head=[1,2]; k=2" into named values. A part without
// '=' is stored under the empty name.
func ParseArgs(s string) (Args, error) {
	args := Args{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			name, value = "", part
		}
		name = strings.TrimSpace(name)
		if _, dup := args[name]; dup {
			return nil, fmt.Errorf("%w: duplicate argument %q", ErrBadInput, name)
		}
		args[name] = strings.TrimSpace(value)
	}
	return args, nil
}

func (a Args) lookup(name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", fmt.Errorf("%w: %w %q", ErrBadInput, ErrMissingArg, name)
	}
	return v, nil
}

// Int returns the named argument as an int.
func (a Args) Int(name string) (int, error) {
	v, err := a.lookup(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %q: %w", ErrBadInput, name, err)
	}
	return n, nil
}

// IntSlice returns the named argument as an int slice.
func (a Args) IntSlice(name string) ([]int, error) {
	v, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	vals, err := ParseIntSlice(v)
	if err != nil {
		return nil, fmt.Errorf("%w: argument %q: %w", ErrBadInput, name, err)
	}
	return vals, nil
}

// NullableIntSlice returns the named argument as a level-order listing.
func (a Args) NullableIntSlice(name string) ([]*int, error) {
	v, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	vals, err := ParseNullableIntSlice(v)
	if err != nil {
		return nil, fmt.Errorf("%w: argument %q: %w", ErrBadInput, name, err)
	}
	return vals, nil
}
