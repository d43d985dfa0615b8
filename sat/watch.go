package sat

// watchIndex is two arrays of lists, indexed by variable handle:
// watches[polarity][v] lists the clauses that asked to be notified
// when Domain(v) loses the value polarity.
type watchIndex struct {
	lists [2][][]ClauseHandle // lists[polarityIndex(p)][v]
}

func polarityIndex(positive bool) int {
	if positive {
		return 1
	}
	return 0
}

func (w *watchIndex) ensure(v Var) {
	for Var(len(w.lists[0])) <= v {
		w.lists[0] = append(w.lists[0], nil)
		w.lists[1] = append(w.lists[1], nil)
	}
}

func (w *watchIndex) add(v Var, positive bool, h ClauseHandle) {
	w.ensure(v)
	idx := polarityIndex(positive)
	w.lists[idx][v] = append(w.lists[idx][v], h)
}

func (w *watchIndex) list(v Var, positive bool) []ClauseHandle {
	idx := polarityIndex(positive)
	if int(v) >= len(w.lists[idx]) {
		return nil
	}
	return w.lists[idx][v]
}

func (w *watchIndex) setList(v Var, positive bool, list []ClauseHandle) {
	idx := polarityIndex(positive)
	w.lists[idx][v] = list
}

// count returns how many clauses are watching (v, positive); used only
// by invariant checks in tests.
func (w *watchIndex) count(v Var, positive bool) int {
	return len(w.list(v, positive))
}
