package sat

// ClauseHandle is a stable reference to a clause in the solver's
// clause store, independent of any slice reallocation.
type ClauseHandle uint32

// noClause is the sentinel "no clause" handle, used as a Cause for
// decisions and pre-existing unit facts.
const noClause ClauseHandle = 1<<32 - 1

// Cause explains why a variable acquired a singleton domain: either an
// explicit decision, or the clause whose unit propagation forced it.
type Cause struct {
	IsDecision bool
	Clause     ClauseHandle
}

var decisionCause = Cause{IsDecision: true, Clause: noClause}

// propagationEngine is the surface a clause needs from its owning
// solver to perform initial and triggered propagation: read the
// current domain, register a watch, and set a domain with a cause.
// Clauses never retain a reference to it between calls.
type propagationEngine interface {
	domain(v Var) Domain
	watchValueRemoval(v Var, polarity bool, handle ClauseHandle)
	setDomain(v Var, d Domain, cause Cause) error
	logEvent(event string, fields map[string]any)
}

// clause is an ordered, deduplicated, non-tautological disjunction of
// literals, plus two watched-literal indices into lits.
type clause struct {
	lits       []Literal
	w0, w1     int
	learnt     bool
	tautology  bool
	normalized bool
}

func newClause(lits []Literal, learnt bool) *clause {
	c := &clause{lits: lits, learnt: learnt}
	return c
}

func (c *clause) size() int { return len(c.lits) }

// normalize deduplicates literals and detects tautology (a clause
// containing both v and ¬v). It runs once, lazily, at the first
// initialPropagate call.
func (c *clause) normalize() {
	if c.normalized {
		return
	}
	c.normalized = true

	seen := make(map[Var]bool, len(c.lits))
	out := c.lits[:0]
	for _, l := range c.lits {
		if positive, ok := seen[l.Var]; ok {
			if positive != l.Positive {
				c.tautology = true
				return
			}
			continue // duplicate literal
		}
		seen[l.Var] = l.Positive
		out = append(out, l)
	}
	c.lits = out
}

// literalState reports whether literal l is currently satisfied,
// falsified, or undetermined under eng's domain for l.Var.
func literalState(eng propagationEngine, l Literal) Status {
	d := eng.domain(l.Var)
	switch {
	case d == Restrict(l.Positive):
		return StatusSAT
	case d == Restrict(!l.Positive):
		return StatusUNSAT
	default:
		return StatusUnknown
	}
}

// unitPropagate forces literal l true, or reports the existing
// domain's verdict if l is already decided one way or the other.
func unitPropagate(eng propagationEngine, handle ClauseHandle, l Literal) Status {
	d := eng.domain(l.Var)
	if !d.Contains(l.Positive) {
		eng.logEvent("unit_propagate_conflict", map[string]any{"var": l.Var, "clause": handle})
		return StatusUNSAT
	}
	if d.IsSingleton() {
		return StatusSAT
	}
	eng.logEvent("unit_propagation", map[string]any{"var": l.Var, "polarity": l.Positive, "clause": handle})
	if err := eng.setDomain(l.Var, Restrict(l.Positive), Cause{Clause: handle}); err != nil {
		return StatusUNSAT
	}
	return StatusSAT
}

// initialPropagate scans the clause once against the current domains,
// establishing its two watches (or discovering it is already unit or
// already falsified).
func (c *clause) initialPropagate(eng propagationEngine, handle ClauseHandle) Status {
	c.normalize()
	if c.tautology {
		return StatusSAT
	}
	if len(c.lits) == 0 {
		return StatusUNSAT
	}

	w0 := -1
	for i, l := range c.lits {
		if eng.domain(l.Var).Contains(l.Positive) {
			w0 = i
			break
		}
	}
	if w0 == -1 {
		return StatusUNSAT
	}

	w1 := -1
	for i := w0 + 1; i < len(c.lits); i++ {
		if eng.domain(c.lits[i].Var).Contains(c.lits[i].Positive) {
			w1 = i
			break
		}
	}
	if w1 == -1 {
		return unitPropagate(eng, handle, c.lits[w0])
	}

	c.w0, c.w1 = w0, w1
	eng.watchValueRemoval(c.lits[c.w0].Var, c.lits[c.w0].Positive, handle)
	eng.watchValueRemoval(c.lits[c.w1].Var, c.lits[c.w1].Positive, handle)
	eng.logEvent("propagate", map[string]any{"clause": handle, "status": "watched"})
	return StatusUnknown
}

// triggeredPropagate is called when triggeringVar became a singleton
// that excludes one of this clause's two watched literals. It tries to
// move that watch to another non-falsified literal; failing that, it
// unit-propagates (or reports the conflict of) the remaining pivot
// watch.
func (c *clause) triggeredPropagate(eng propagationEngine, handle ClauseHandle, triggeringVar Var) Status {
	var k int
	switch {
	case c.lits[c.w0].Var == triggeringVar:
		k = 0
	case c.lits[c.w1].Var == triggeringVar:
		k = 1
	default:
		panic("sat: triggeredPropagate on a clause not watching triggeringVar")
	}
	pivotIdx := c.w1
	if k == 1 {
		pivotIdx = c.w0
	}
	kIdx := c.w0
	if k == 1 {
		kIdx = c.w1
	}

	n := len(c.lits)
	for step := 1; step <= n; step++ {
		j := (kIdx + step) % n
		if j == pivotIdx {
			continue
		}
		if literalState(eng, c.lits[j]) != StatusUNSAT {
			if k == 0 {
				c.w0 = j
			} else {
				c.w1 = j
			}
			if c.w0 > c.w1 {
				c.w0, c.w1 = c.w1, c.w0
			}
			eng.watchValueRemoval(c.lits[j].Var, c.lits[j].Positive, handle)
			eng.logEvent("updating_watch", map[string]any{"clause": handle, "var": c.lits[j].Var})
			return StatusUnknown
		}
	}

	return unitPropagate(eng, handle, c.lits[pivotIdx])
}

// literals returns the clause's literal list (read-only by contract).
func (c *clause) literals() []Literal { return c.lits }
