package sat

// dirtyQueue is the FIFO of variables whose singleton-ing has not yet
// been propagated to dependent clauses.
type dirtyQueue struct {
	items []Var
	head  int
}

func (q *dirtyQueue) push(v Var) {
	q.items = append(q.items, v)
}

func (q *dirtyQueue) pop() (Var, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	v := q.items[q.head]
	q.head++
	return v, true
}

func (q *dirtyQueue) empty() bool {
	return q.head >= len(q.items)
}

func (q *dirtyQueue) clear() {
	q.items = q.items[:0]
	q.head = 0
}

// propagate drains the dirty queue to fix-point, dispatching each
// affected clause through the watch index. It returns the conflicting
// clause handle and true if propagation discovered a falsified
// clause; otherwise it returns fix-point reached with ok=false.
//
// Clause visit order within a single drain pass is deterministic
// given insertion order and historical watch moves, but the SAT/UNSAT
// outcome never depends on it.
func (s *Solver) propagate() (ClauseHandle, bool) {
	for {
		v, ok := s.dirty.pop()
		if !ok {
			return 0, false
		}
		value, isSingleton := s.domains[v].Value()
		if !isSingleton {
			panic(newInvariantError(v, "dirty variable has non-singleton domain"))
		}
		removed := !value

		list := s.watches.list(v, removed)
		i := 0
		for i < len(list) {
			h := list[i]
			c := s.clauses[h]
			status := c.triggeredPropagate(s, h, v)
			switch status {
			case StatusUnknown:
				list[i] = list[len(list)-1]
				list = list[:len(list)-1]
			case StatusUNSAT:
				s.watches.setList(v, removed, list)
				return h, true
			case StatusSAT:
				i++
			}
		}
		s.watches.setList(v, removed, list)
	}
}
