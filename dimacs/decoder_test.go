package dimacs

import (
	"strings"
	"testing"

	"github.com/michael-veksler/solver/sat"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyInput(t *testing.T) {
	_, _, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, InvalidFormat, derr.Kind)
}

func TestDecodeBadHeaderPrefix(t *testing.T) {
	_, _, err := Decode(strings.NewReader("p cn 2 3\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, InvalidHeader, derr.Kind)
}

func TestDecodeHeaderNegativeNumbers(t *testing.T) {
	_, _, err := Decode(strings.NewReader("c foo\np cnf -3 2\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, InvalidHeader, derr.Kind)
}

func TestDecodeJunkAfterHeader(t *testing.T) {
	_, _, err := Decode(strings.NewReader("p cnf 2 3 4\n1 2 0\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, InvalidHeader, derr.Kind)
}

func TestDecodeVariableCountOverflow(t *testing.T) {
	_, _, err := Decode(strings.NewReader("p cnf 2147483648 3\n1 2 0\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, InvalidHeader, derr.Kind)
}

func TestDecodeVariableCountAtMax(t *testing.T) {
	header, _, err := Decode(strings.NewReader("p cnf 2147483647 3\n1 2 0\n"))
	require.NoError(t, err)
	require.Equal(t, int(sat.MaxVar), header.NumVars)
}

func TestDecodeMultipleZerosInClause(t *testing.T) {
	_, _, err := Decode(strings.NewReader("p cnf 10 20\n1 -2 0\n2 0 3 0\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, MultipleZeros, derr.Kind)
}

func TestDecodeMissingZeroAtEnd(t *testing.T) {
	_, _, err := Decode(strings.NewReader("p cnf 10 20\n1 -2 3\n2 2 3 0\n"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, MissingZero, derr.Kind)
}

func TestDecodeWellFormedInput(t *testing.T) {
	input := "\np cnf 4 5\n1 -2 3 0\n2 3 0\n-1 2 -3 4 0\n1 -2 -3 -4 0\n"
	header, clauses, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, header.NumVars)
	require.Equal(t, 5, header.NumClauses)
	require.Equal(t, []Clause{
		{1, -2, 3},
		{2, 3},
		{-1, 2, -3, 4},
		{1, -2, -3, -4},
	}, clauses)
}

func TestLoadIntoBuildsSolver(t *testing.T) {
	input := "p cnf 3 3\n-1 2 0\n-2 3 0\n1 0\n"
	s := sat.NewSolver(-1, nil, nil)
	header, err := LoadInto(strings.NewReader(input), s)
	require.NoError(t, err)
	require.Equal(t, 3, header.NumVars)

	status, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, sat.StatusSAT, status)
	for v := sat.Var(1); v <= 3; v++ {
		val, err := s.Value(v)
		require.NoError(t, err)
		require.True(t, val)
	}
}
