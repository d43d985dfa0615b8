package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stubEngine is a minimal propagationEngine for exercising clause
// methods in isolation from the full Solver.
type stubEngine struct {
	domains []Domain // indexed by Var
	watched map[Var][]ClauseHandle
}

func newStubEngine(numVars Var) *stubEngine {
	return &stubEngine{
		domains: make([]Domain, numVars+1),
		watched: map[Var][]ClauseHandle{},
	}
}

func (e *stubEngine) domain(v Var) Domain { return e.domains[v] }

func (e *stubEngine) watchValueRemoval(v Var, _ bool, h ClauseHandle) {
	e.watched[v] = append(e.watched[v], h)
}

func (e *stubEngine) setDomain(v Var, d Domain, _ Cause) error {
	next := e.domains[v] & d
	if next.IsEmpty() {
		return newError(InternalInvariant, "empty domain")
	}
	e.domains[v] = next
	return nil
}

func (e *stubEngine) logEvent(string, map[string]any) {}

func mkLits(vals ...int64) []Literal {
	lits := make([]Literal, len(vals))
	for i, x := range vals {
		lits[i] = LiteralFromInt(x)
	}
	return lits
}

func TestClauseInitialPropagateWatched(t *testing.T) {
	eng := newStubEngine(3)
	for v := Var(1); v <= 3; v++ {
		eng.domains[v] = DomainUniversal
	}
	c := newClause(mkLits(1, -2, 3), false)
	status := c.initialPropagate(eng, 0)
	require.Equal(t, StatusUnknown, status)
	require.Equal(t, 0, c.w0)
	require.Equal(t, 1, c.w1)
}

func TestClauseInitialPropagateUnit(t *testing.T) {
	eng := newStubEngine(2)
	eng.domains[1] = DomainFalse
	eng.domains[2] = DomainUniversal
	c := newClause(mkLits(1, 2), false)
	status := c.initialPropagate(eng, 0)
	require.Equal(t, StatusSAT, status)
	require.Equal(t, DomainTrue, eng.domains[2])
}

func TestClauseInitialPropagateUNSAT(t *testing.T) {
	eng := newStubEngine(1)
	eng.domains[1] = DomainFalse
	c := newClause(mkLits(1), false)
	status := c.initialPropagate(eng, 0)
	require.Equal(t, StatusUNSAT, status)
}

func TestClauseTautologyDetected(t *testing.T) {
	eng := newStubEngine(2)
	eng.domains[1] = DomainUniversal
	eng.domains[2] = DomainUniversal
	c := newClause(mkLits(1, -1, 2), false)
	status := c.initialPropagate(eng, 0)
	require.Equal(t, StatusSAT, status)
	require.True(t, c.tautology)
	require.Empty(t, eng.watched)
}

func TestClauseDuplicateLiteralsDeduped(t *testing.T) {
	eng := newStubEngine(2)
	eng.domains[1] = DomainUniversal
	eng.domains[2] = DomainUniversal
	c := newClause(mkLits(1, 2, 1), false)
	c.initialPropagate(eng, 0)
	require.Len(t, c.lits, 2)
}

func TestClauseTriggeredPropagateMovesWatch(t *testing.T) {
	eng := newStubEngine(4)
	for v := Var(1); v <= 4; v++ {
		eng.domains[v] = DomainUniversal
	}
	c := newClause(mkLits(1, 2, 3, 4), false)
	require.Equal(t, StatusUnknown, c.initialPropagate(eng, 0))
	require.Equal(t, 0, c.w0)
	require.Equal(t, 1, c.w1)

	eng.domains[1] = DomainFalse // literal 1 (positive) now falsified
	status := c.triggeredPropagate(eng, 0, 1)
	require.Equal(t, StatusUnknown, status)
	require.NotEqual(t, Var(1), c.lits[c.w0].Var)
}

func TestClauseTriggeredPropagateUnitPropagates(t *testing.T) {
	eng := newStubEngine(2)
	eng.domains[1] = DomainUniversal
	eng.domains[2] = DomainUniversal
	c := newClause(mkLits(1, 2), false)
	require.Equal(t, StatusUnknown, c.initialPropagate(eng, 0))

	eng.domains[1] = DomainFalse
	status := c.triggeredPropagate(eng, 0, 1)
	require.Equal(t, StatusSAT, status)
	require.Equal(t, DomainTrue, eng.domains[2])
}

func TestClauseTriggeredPropagateConflict(t *testing.T) {
	eng := newStubEngine(2)
	eng.domains[1] = DomainUniversal
	eng.domains[2] = DomainUniversal
	c := newClause(mkLits(1, 2), false)
	require.Equal(t, StatusUnknown, c.initialPropagate(eng, 0))

	eng.domains[2] = DomainFalse // var 2 excluded elsewhere
	eng.domains[1] = DomainFalse
	status := c.triggeredPropagate(eng, 0, 1)
	require.Equal(t, StatusUNSAT, status)
}
