// Package intbool encodes finite-integer variables into the Boolean
// variables and clauses of a sat.Solver: one-hot value bits plus order
// bits, with an at-least-one constraint over the one-hot bits and
// at-most-one and monotone-order constraints through the order bits.
package intbool

import (
	"sort"

	"github.com/michael-veksler/solver/sat"
)

// IntVar is a finite-integer variable encoded over an ascending,
// deduplicated domain of ints. Values returns the domain in the same
// order used to build the one-hot bits.
type IntVar struct {
	values []int
	oneHot []sat.Var // oneHot[i] <=> integer == values[i]
	order  []sat.Var // order[i] <=> integer >= values[i], for i in [1, len(values)-1)
}

// Values returns the ascending domain this variable ranges over.
func (iv *IntVar) Values() []int {
	out := make([]int, len(iv.values))
	copy(out, iv.values)
	return out
}

// Encoder posts one-hot/order constraints for finite-integer variables
// onto an underlying sat.Solver.
type Encoder struct {
	s *sat.Solver
}

// NewEncoder wraps solver s; the encoder never constructs its own
// solver so callers can mix hand-built Boolean clauses with encoded
// integers in one instance.
func NewEncoder(s *sat.Solver) *Encoder {
	return &Encoder{s: s}
}

// AddIntVar creates a finite-integer variable ranging over domain
// (deduplicated and sorted ascending internally) and posts its
// one-hot, at-most-one, and monotone-order constraints.
//
// The order-variable extremes are reduced at the boundaries: the
// minimum value's order bit is implicitly true (no Boolean variable is
// allocated for it) and the maximum value's order bit coincides with
// its own one-hot bit, so only len(domain)-2 order variables are
// allocated.
func (e *Encoder) AddIntVar(domain []int) (*IntVar, error) {
	values := dedupeSorted(domain)
	if len(values) == 0 {
		return nil, &sat.Error{Kind: sat.InvalidInput, Msg: "intbool: empty domain"}
	}

	iv := &IntVar{values: values}
	iv.oneHot = make([]sat.Var, len(values))
	for i := range values {
		v, err := e.s.AddVar()
		if err != nil {
			return nil, err
		}
		iv.oneHot[i] = v
	}

	iv.order = make([]sat.Var, len(values))
	for i := 1; i < len(values)-1; i++ {
		v, err := e.s.AddVar()
		if err != nil {
			return nil, err
		}
		iv.order[i] = v
	}
	// order[len(values)-1] coincides with the maximum's one-hot bit;
	// order[0] is implicitly true and never materialized.

	if err := e.postAtLeastOne(iv); err != nil {
		return nil, err
	}
	if err := e.postAtMostOne(iv); err != nil {
		return nil, err
	}
	if err := e.postMonotoneOrder(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (e *Encoder) postAtLeastOne(iv *IntVar) error {
	b := e.s.AddClause()
	for _, v := range iv.oneHot {
		b.AddLiteral(v, true)
	}
	return nil
}

// orderLit returns the literal variable to use in place of order[i],
// honoring the two boundary reductions, plus whether such a variable
// exists: it is false only for i == 0, the minimum's implicitly-true
// order bit, which callers then leave out of their clauses.
func (iv *IntVar) orderLit(i int) (sat.Var, bool) {
	last := len(iv.values) - 1
	switch i {
	case 0:
		return 0, false // implicitly true; never referenced as a literal
	case last:
		return iv.oneHot[last], true
	default:
		return iv.order[i], true
	}
}

// postAtMostOne posts x_d ⇒ o_d for every value, and x_d ⇒ ¬o_{d+} for
// the adjacent larger value d+: integer == d rules out integer >= d+,
// for any d+ strictly above d.
func (e *Encoder) postAtMostOne(iv *IntVar) error {
	last := len(iv.values) - 1
	for i := range iv.values {
		if ov, has := iv.orderLit(i); has {
			b := e.s.AddClause()
			b.AddLiteral(iv.oneHot[i], false)
			b.AddLiteral(ov, true)
		}
		if i < last {
			if above, has := iv.orderLit(i + 1); has {
				b := e.s.AddClause()
				b.AddLiteral(iv.oneHot[i], false)
				b.AddLiteral(above, false)
			}
		}
	}
	return nil
}

// postMonotoneOrder posts o_{d+} ⇒ o_d for ascending d, skipping the
// implicitly-true minimum.
func (e *Encoder) postMonotoneOrder(iv *IntVar) error {
	for i := 1; i < len(iv.values); i++ {
		lower, hasLower := iv.orderLit(i - 1)
		if !hasLower {
			continue // lower bound is the implicit-true minimum
		}
		higher, _ := iv.orderLit(i)
		b := e.s.AddClause()
		b.AddLiteral(higher, false)
		b.AddLiteral(lower, true)
	}
	return nil
}

// Decode reads the unique one-hot bit set to true in the solver's
// current (necessarily SAT) solution and returns the corresponding
// domain value.
func (iv *IntVar) Decode(s *sat.Solver) (int, error) {
	found := -1
	for i, v := range iv.oneHot {
		val, err := s.Value(v)
		if err != nil {
			return 0, err
		}
		if val {
			if found != -1 {
				return 0, &sat.Error{Kind: sat.InternalInvariant, Msg: "intbool: more than one one-hot bit set"}
			}
			found = i
		}
	}
	if found == -1 {
		return 0, &sat.Error{Kind: sat.InternalInvariant, Msg: "intbool: no one-hot bit set"}
	}
	return iv.values[found], nil
}

func dedupeSorted(domain []int) []int {
	cp := make([]int, len(domain))
	copy(cp, domain)
	sort.Ints(cp)
	out := cp[:0]
	for i, x := range cp {
		if i == 0 || x != cp[i-1] {
			out = append(out, x)
		}
	}
	return out
}
