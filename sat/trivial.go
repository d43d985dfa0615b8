package sat

// TrivialSolver is an independent, deliberately unoptimized exhaustive
// solver used as an oracle to differentially test the CDCL engine. It
// shares Var/Literal/Domain but none of the clause/watch/trail
// machinery.
type TrivialSolver struct {
	numVars     Var
	clauses     [][]Literal
	domains     []Domain
	maxAttempts int
	attempts    int
	budgetHit   bool
}

// NewTrivialSolver builds an oracle over numVars variables with the
// given maxAttempts recursion budget; a non-positive budget means
// unbounded.
func NewTrivialSolver(numVars Var, maxAttempts int) *TrivialSolver {
	return &TrivialSolver{
		numVars:     numVars,
		domains:     make([]Domain, numVars+1),
		maxAttempts: maxAttempts,
	}
}

// AddClause appends a clause given as a literal slice; it does not
// mutate its argument.
func (t *TrivialSolver) AddClause(lits []Literal) {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	t.clauses = append(t.clauses, cp)
}

// Solve assigns variables in handle order by exhaustive enumeration,
// recursing only while every clause still has a literal whose polarity
// remains admissible, and returns the outcome plus a witness valid
// only when the outcome is StatusSAT.
func (t *TrivialSolver) Solve() (Status, []bool) {
	for v := Var(1); v <= t.numVars; v++ {
		t.domains[v] = DomainUniversal
	}
	t.attempts = 0
	t.budgetHit = false

	if t.search(1) {
		witness := make([]bool, t.numVars+1)
		for v := Var(1); v <= t.numVars; v++ {
			witness[v], _ = t.domains[v].Value()
		}
		return StatusSAT, witness
	}
	if t.budgetHit {
		return StatusUnknown, nil
	}
	return StatusUNSAT, nil
}

// search tries both polarities for variable depth and every variable
// above it, returning true the moment a fully consistent assignment is
// found.
func (t *TrivialSolver) search(depth Var) bool {
	if t.maxAttempts > 0 && t.attempts >= t.maxAttempts {
		t.budgetHit = true
		return false
	}
	t.attempts++

	if depth > t.numVars {
		return t.allSatisfied()
	}

	for _, val := range [...]bool{false, true} {
		t.domains[depth] = Restrict(val)
		if t.consistentPrefix() {
			if t.search(depth + 1) {
				return true
			}
		}
		if t.budgetHit {
			return false
		}
	}
	t.domains[depth] = DomainUniversal
	return false
}

// consistentPrefix reports whether every clause still has a literal
// whose variable's domain is either unassigned (depth beyond it) or
// admits the literal's polarity.
func (t *TrivialSolver) consistentPrefix() bool {
	for _, c := range t.clauses {
		satisfiable := false
		for _, l := range c {
			if t.domains[l.Var].Contains(l.Positive) {
				satisfiable = true
				break
			}
		}
		if !satisfiable {
			return false
		}
	}
	return true
}

func (t *TrivialSolver) allSatisfied() bool {
	for _, c := range t.clauses {
		ok := false
		for _, l := range c {
			if t.domains[l.Var].Contains(l.Positive) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
