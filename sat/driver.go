package sat

// Solver is a CDCL Boolean satisfiability engine over a fixed set of
// variables and an append-only set of clauses. It is not safe for
// concurrent use: callers must not mutate or query a Solver from
// another goroutine while Solve is in progress.
type Solver struct {
	domains      []Domain
	implications []Implication
	trail        []Var
	trailLim     []int
	dirty        dirtyQueue
	watches      watchIndex
	clauses      []*clause
	initialized  int

	nextVar Var

	strategy        Strategy
	sink            Sink
	maxBacktracks   int
	backtracksUsed  int
	lastDecisionVar Var

	solving  bool
	poisoned bool

	analysisSeen    []bool
	analysisTouched []Var
	depthHeap       depthHeap
}

// NewSolver builds an empty Solver. maxBacktracks bounds the CDCL main
// loop; a non-positive value means unbounded. strategy and sink may be
// nil, in which case the default round-robin strategy and the discard
// sink are used.
func NewSolver(maxBacktracks int, strategy Strategy, sink Sink) *Solver {
	if strategy == nil {
		strategy = NewDefaultStrategy()
	}
	if sink == nil {
		sink = DiscardSink
	}
	s := &Solver{
		strategy:      strategy,
		sink:          sink,
		maxBacktracks: maxBacktracks,
	}
	// Var(0) is a reserved sentinel; domains/implications are indexed
	// by Var directly, so slot 0 is padding.
	s.domains = append(s.domains, DomainUniversal)
	s.implications = append(s.implications, neutralImplication)
	s.watches.ensure(0)
	return s
}

// NumVars reports how many variables have been added.
func (s *Solver) NumVars() Var { return s.nextVar }

// AddVar appends a variable, optionally pre-restricted to initial
// instead of the universal domain. It fails with IndexOverflow once
// MaxVar handles have been issued.
func (s *Solver) AddVar(initial ...Domain) (Var, error) {
	if s.nextVar >= MaxVar {
		return 0, newError(IndexOverflow, "cannot add another variable beyond MaxVar=%d", MaxVar)
	}
	d := DomainUniversal
	if len(initial) > 0 {
		d = initial[0]
	}
	s.nextVar++
	v := s.nextVar
	s.domains = append(s.domains, d)
	s.implications = append(s.implications, neutralImplication)
	s.watches.ensure(v)
	if d.IsSingleton() {
		s.trail = append(s.trail, v)
		s.implications[v] = Implication{Cause: decisionCause, Depth: len(s.trail), Level: 0}
		s.dirty.push(v)
	}
	return v, nil
}

// ClauseBuilder accumulates the literals of one clause being added via
// Solver.AddClause. Literals may be appended any time before Solve
// runs; the clause is normalized and watched lazily at its first
// initial propagation.
type ClauseBuilder struct {
	c *clause
}

// AddLiteral appends literal (v, positive) to the clause under
// construction and returns the builder for chaining.
func (b *ClauseBuilder) AddLiteral(v Var, positive bool) *ClauseBuilder {
	b.c.lits = append(b.c.lits, Lit(v, positive))
	return b
}

// AddClause registers a new, initially empty clause and returns a
// builder for appending its literals.
func (s *Solver) AddClause() *ClauseBuilder {
	c := newClause(nil, false)
	s.clauses = append(s.clauses, c)
	return &ClauseBuilder{c: c}
}

// addLearnt appends a learned clause and immediately performs its
// initial propagation: a clause learned from a 1-UIP resolution is
// guaranteed by construction to be unit under the current
// (post-backjump) domains.
func (s *Solver) addLearnt(lits []Literal) (ClauseHandle, Status) {
	c := newClause(lits, true)
	s.clauses = append(s.clauses, c)
	h := ClauseHandle(len(s.clauses) - 1)
	status := c.initialPropagate(s, h)
	s.initialized = len(s.clauses)
	return h, status
}

// Value reports the singleton value of v. It is only meaningful after
// Solve has returned StatusSAT. It returns an OutOfRange error for an
// unknown handle and an InternalInvariant error when v's domain is not
// a singleton.
func (s *Solver) Value(v Var) (bool, error) {
	if v == 0 || v > s.nextVar {
		return false, newError(OutOfRange, "variable %d is not a known handle", v)
	}
	val, ok := s.domains[v].Value()
	if !ok {
		return false, newInvariantError(v, "Value called on a non-singleton domain")
	}
	return val, nil
}

// propagationEngine implementation -------------------------------------------------

func (s *Solver) domain(v Var) Domain { return s.domains[v] }

func (s *Solver) watchValueRemoval(v Var, polarity bool, handle ClauseHandle) {
	s.watches.add(v, polarity, handle)
}

func (s *Solver) setDomain(v Var, d Domain, cause Cause) error {
	cur := s.domains[v]
	next := cur & d
	if next.IsEmpty() {
		return newError(InternalInvariant, "setDomain(%d) would empty the domain", v)
	}
	s.domains[v] = next
	s.logEvent("set_domain", map[string]any{"var": v, "domain": next, "level": s.decisionLevel()})
	if next.IsSingleton() && !cur.IsSingleton() {
		s.trail = append(s.trail, v)
		s.implications[v] = Implication{Cause: cause, Depth: len(s.trail), Level: s.decisionLevel()}
		s.dirty.push(v)
	}
	return nil
}

func (s *Solver) logEvent(event string, fields map[string]any) {
	s.sink.Log(event, fields)
}

// validateClauseVars checks every literal of every clause added since
// the last validation pass against the current variable count. It
// must run before initial propagation touches s.domains/s.implications
// by index, since those slices are only ever grown to NumVars()+1 and
// a literal referencing an unknown variable would otherwise index past
// their end.
func (s *Solver) validateClauseVars() error {
	for i := s.initialized; i < len(s.clauses); i++ {
		for _, l := range s.clauses[i].lits {
			if l.Var == 0 || l.Var > s.nextVar {
				return newError(OutOfRange, "clause %d references variable %d outside [1, %d]", i, l.Var, s.nextVar)
			}
		}
	}
	return nil
}

// runInitialPropagation drives initial_propagate over every user clause
// added since the last call; Solve runs it once on entry. Learned
// clauses are propagated by addLearnt itself. It reports the first
// conflicting clause found, if any.
func (s *Solver) runInitialPropagation() (ClauseHandle, bool) {
	for s.initialized < len(s.clauses) {
		h := ClauseHandle(s.initialized)
		c := s.clauses[h]
		status := c.initialPropagate(s, h)
		s.initialized++
		if status == StatusUNSAT {
			return h, true
		}
	}
	return 0, false
}

// Solve runs the CDCL main loop to completion or until the backtrack
// budget is exhausted.
func (s *Solver) Solve() (Status, error) {
	if s.solving {
		return StatusUnknown, newError(InvalidInput, "Solve is not re-entrant")
	}
	if s.poisoned {
		return StatusUnknown, newError(InvalidInput, "Solve called again on an instance already solved to completion")
	}
	s.solving = true
	defer func() { s.solving = false }()

	if err := s.validateClauseVars(); err != nil {
		return StatusUnknown, err
	}

	if conflict, found := s.runInitialPropagation(); found {
		s.logEvent("initial_unsat", map[string]any{"clause": conflict})
		s.poisoned = true
		return StatusUNSAT, nil
	}

	for {
		conflict, hasConflict := s.propagate()
		if hasConflict {
			if s.decisionLevel() == 0 {
				s.poisoned = true
				return StatusUNSAT, nil
			}
			result, analyzed := s.analyze(conflict)
			if !analyzed {
				s.poisoned = true
				return StatusUNSAT, nil
			}
			if s.backtracksUsed >= s.maxBacktracks && s.maxBacktracks > 0 {
				s.poisoned = true
				return StatusUnknown, nil
			}
			s.backjumpTo(result.backjumpLevel)
			if _, status := s.addLearnt(result.learnt); status == StatusUNSAT {
				panic(newInvariantError(0, "learned clause immediately falsified after backjump"))
			}
			s.backtracksUsed++
			continue
		}

		v, ok := s.nextDecisionVar()
		if !ok {
			return s.finalizeSAT()
		}
		s.newDecisionLevel()
		val := s.strategy.ChooseValue(s.domains[v])
		s.lastDecisionVar = v
		s.logEvent("decision", map[string]any{"var": v, "value": val, "level": s.decisionLevel()})
		if err := s.setDomain(v, Restrict(val), decisionCause); err != nil {
			panic(newInvariantError(v, "decision on a variable with empty domain"))
		}
	}
}

// nextDecisionVar scans circularly from the strategy's preferred
// starting point for the first non-singleton variable.
func (s *Solver) nextDecisionVar() (Var, bool) {
	if s.nextVar == 0 {
		return 0, false
	}
	start := s.strategy.FirstVarToChoose(s.lastDecisionVar)
	for i := Var(0); i < s.nextVar; i++ {
		v := Var(1) + (start-1+i)%s.nextVar
		if !s.domains[v].IsSingleton() {
			return v, true
		}
	}
	return 0, false
}

func (s *Solver) finalizeSAT() (Status, error) {
	for v := Var(1); v <= s.nextVar; v++ {
		if !s.domains[v].IsSingleton() {
			panic(newInvariantError(v, "SAT declared with a non-singleton variable"))
		}
	}
	s.logEvent("final_solution", map[string]any{"vars": s.nextVar})
	s.poisoned = true
	return StatusSAT, nil
}
