package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrivialSolverSAT(t *testing.T) {
	s := NewTrivialSolver(3, -1)
	s.AddClause(mkLits(-1, 2))
	s.AddClause(mkLits(-2, 3))
	s.AddClause(mkLits(1))
	status, model := s.Solve()
	require.Equal(t, StatusSAT, status)
	require.True(t, model[1])
	require.True(t, model[2])
	require.True(t, model[3])
}

func TestTrivialSolverUNSAT(t *testing.T) {
	s := NewTrivialSolver(1, -1)
	s.AddClause(mkLits(1))
	s.AddClause(mkLits(-1))
	status, _ := s.Solve()
	require.Equal(t, StatusUNSAT, status)
}

func TestTrivialSolverBudgetExhausted(t *testing.T) {
	const n = 8
	s := NewTrivialSolver(n, 4)
	total := 1 << n
	for mask := 0; mask < total; mask++ {
		lits := make([]Literal, n)
		for v := 0; v < n; v++ {
			lits[v] = Lit(Var(v+1), mask&(1<<v) == 0)
		}
		s.AddClause(lits)
	}
	status, _ := s.Solve()
	require.Equal(t, StatusUnknown, status)
}

func TestTrivialSolverEmptyInstance(t *testing.T) {
	s := NewTrivialSolver(0, -1)
	status, model := s.Solve()
	require.Equal(t, StatusSAT, status)
	require.Len(t, model, 1)
}
