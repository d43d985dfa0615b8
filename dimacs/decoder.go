// Package dimacs decodes the textual DIMACS CNF format into clauses a
// sat.Solver can consume. It is an external collaborator of the sat
// engine (it only calls sat's public API), not part of the core.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/michael-veksler/solver/sat"
)

// ErrorKind classifies a decode failure.
type ErrorKind int

const (
	// InvalidFormat means the input had no usable content at all.
	InvalidFormat ErrorKind = iota
	// InvalidHeader means the "p cnf ..." line was missing, malformed,
	// or out of range, or a clause line held a token that is not an
	// integer.
	InvalidHeader
	// MultipleZeros means a clause line had a 0 terminator followed by
	// more tokens.
	MultipleZeros
	// MissingZero means a clause line never reached a 0 terminator.
	MissingZero
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "InvalidFormat"
	case InvalidHeader:
		return "InvalidHeader"
	case MultipleZeros:
		return "MultipleZeros"
	case MissingZero:
		return "MissingZero"
	default:
		return "Unknown"
	}
}

// Error is returned by Decode and LoadInto. Line is 1-based and refers
// to the input line that triggered the failure (0 when the whole input
// was unusable).
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dimacs: %s: line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("dimacs: %s: %s", e.Kind, e.Msg)
}

// Header is the problem size declared by the "p cnf" line.
type Header struct {
	NumVars    int
	NumClauses int
}

// Clause is one parsed clause, signed-integer DIMACS convention.
type Clause []int64

func lstrip(s string) string {
	return strings.TrimLeft(s, " \t")
}

// Decode reads r to completion and returns the declared header plus
// every parsed clause, in file order. It does not cross-check the
// declared clause count against the number actually read — callers
// that care can compare len(clauses) to Header.NumClauses themselves.
func Decode(r io.Reader) (Header, []Clause, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	var header Header
	var clauses []Clause
	sawHeader := false
	sawAnyLine := false

	nextNonComment := func() (string, int, bool) {
		for scanner.Scan() {
			lineNum++
			line := lstrip(scanner.Text())
			if line == "" || line[0] == 'c' {
				continue
			}
			return line, lineNum, true
		}
		return "", lineNum, false
	}

	for {
		line, n, ok := nextNonComment()
		if !ok {
			break
		}
		sawAnyLine = true
		if !sawHeader {
			h, err := parseHeader(line, n)
			if err != nil {
				return Header{}, nil, err
			}
			header = h
			sawHeader = true
			continue
		}
		clause, err := parseClause(line, n)
		if err != nil {
			return Header{}, nil, err
		}
		clauses = append(clauses, clause)
	}

	if !sawAnyLine {
		return Header{}, nil, &Error{Kind: InvalidFormat, Msg: "all lines are either empty or commented out"}
	}
	if !sawHeader {
		return Header{}, nil, &Error{Kind: InvalidHeader, Line: lineNum, Msg: "no 'p cnf' header line found"}
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, &Error{Kind: InvalidFormat, Line: lineNum, Msg: err.Error()}
	}
	return header, clauses, nil
}

func parseHeader(line string, n int) (Header, error) {
	const prefix = "p cnf "
	if !strings.HasPrefix(line, prefix) {
		return Header{}, &Error{Kind: InvalidHeader, Line: n,
			Msg: fmt.Sprintf("expecting a line prefix %q but got %q", prefix, line)}
	}
	fields := strings.Fields(line[len(prefix):])
	if len(fields) < 2 {
		return Header{}, &Error{Kind: InvalidHeader, Line: n,
			Msg: fmt.Sprintf("expecting a header 'p cnf <variables> <clauses>' but got %q", line)}
	}
	numVars, err1 := strconv.ParseUint(fields[0], 10, 32)
	numClauses, err2 := strconv.ParseUint(fields[1], 10, 32)
	if err1 != nil || err2 != nil || numVars > uint64(sat.MaxVar) {
		return Header{}, &Error{Kind: InvalidHeader, Line: n,
			Msg: fmt.Sprintf("expecting a header 'p cnf <variables: unsigned int> <clauses: unsigned int>' but got %q", line)}
	}
	if len(fields) > 2 {
		return Header{}, &Error{Kind: InvalidHeader, Line: n,
			Msg: fmt.Sprintf("junk after header %q", fields[2])}
	}
	return Header{NumVars: int(numVars), NumClauses: int(numClauses)}, nil
}

func parseClause(line string, n int) (Clause, error) {
	fields := strings.Fields(line)
	var clause Clause
	for i, f := range fields {
		value, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, &Error{Kind: InvalidHeader, Line: n, Msg: fmt.Sprintf("not an integer: %q", f)}
		}
		if value == 0 {
			if i != len(fields)-1 {
				return nil, &Error{Kind: MultipleZeros, Line: n,
					Msg: fmt.Sprintf("0 should be only at the end for the line %q", line)}
			}
			return clause, nil
		}
		clause = append(clause, value)
	}
	return nil, &Error{Kind: MissingZero, Line: n,
		Msg: fmt.Sprintf("missing 0 at the end of the line for line %q", line)}
}

// LoadInto decodes r and builds the declared variables and clauses
// directly on solver s, returning the header. Variables beyond those
// the header declares are created on demand if a clause literal
// references one out of range, so a header that undercounts variables
// does not by itself make the instance unloadable.
func LoadInto(r io.Reader, s *sat.Solver) (Header, error) {
	header, clauses, err := Decode(r)
	if err != nil {
		return Header{}, err
	}
	for s.NumVars() < sat.Var(header.NumVars) {
		if _, err := s.AddVar(); err != nil {
			return Header{}, err
		}
	}
	for _, clause := range clauses {
		b := s.AddClause()
		for _, x := range clause {
			lit := sat.LiteralFromInt(x)
			for s.NumVars() < lit.Var {
				if _, err := s.AddVar(); err != nil {
					return Header{}, err
				}
			}
			b.AddLiteral(lit.Var, lit.Positive)
		}
	}
	return header, nil
}
