package sat

// analyzeResult is the outcome of 1-UIP conflict resolution.
type analyzeResult struct {
	learnt        []Literal
	backjumpLevel int
}

// analyze builds a learned clause from the conflicting clause by
// repeated binary resolution along the trail's implications, stopping
// at the first unique implication point.
//
// The resolvent under construction is tracked as a seen-set
// (analysisSeen) plus a max-heap of trail depths (depthHeap): every
// variable this function ever inserts into the resolvent is currently
// assigned, so its literal form in the resolvent is always (var,
// ¬currentValue) — the polarity need not be stored separately.
func (s *Solver) analyze(conflict ClauseHandle) (analyzeResult, bool) {
	conflictLevel := s.decisionLevel()
	s.resetAnalysisScratch()
	defer s.clearAnalysisScratch()

	learnt := make([]Literal, 1, 8) // slot 0 reserved for the asserting literal
	pathConflict := 0
	cur := conflict

	s.logEvent("conflict_initiation", map[string]any{"clause": conflict, "level": conflictLevel})

	var pivotVar Var
	for {
		c := s.clauses[cur]
		for _, l := range c.literals() {
			v := l.Var
			if s.analysisSeen[v] {
				continue
			}
			depth := s.implications[v].Depth
			if s.implications[v].Level == 0 {
				continue // level-0 facts never enter learned clauses
			}
			s.analysisSeen[v] = true
			s.analysisTouched = append(s.analysisTouched, v)
			if s.implications[v].Level == conflictLevel {
				pathConflict++
				s.depthHeap.push(depth)
			} else {
				learnt = append(learnt, l)
			}
		}

		depth, ok := s.depthHeap.popMax()
		if !ok {
			return analyzeResult{}, false
		}
		pivotVar = s.trail[depth-1]
		pathConflict--
		s.logEvent("resolution_step", map[string]any{"pivot": pivotVar, "remaining": pathConflict})
		if pathConflict == 0 {
			break
		}

		cause := s.implications[pivotVar].Cause
		if cause.IsDecision {
			return analyzeResult{}, false
		}
		cur = cause.Clause
	}

	val, ok := s.domains[pivotVar].Value()
	if !ok {
		panic(newInvariantError(pivotVar, "1-UIP pivot variable is not assigned"))
	}
	learnt[0] = Lit(pivotVar, !val)

	backjumpLevel := 0
	for _, l := range learnt[1:] {
		if lvl := s.implications[l.Var].Level; lvl > backjumpLevel {
			backjumpLevel = lvl
		}
	}

	return analyzeResult{learnt: learnt, backjumpLevel: backjumpLevel}, true
}

func (s *Solver) resetAnalysisScratch() {
	if s.analysisSeen == nil || Var(len(s.analysisSeen)) <= s.nextVar {
		s.analysisSeen = make([]bool, s.nextVar+1)
	}
	s.analysisTouched = s.analysisTouched[:0]
	s.depthHeap.reset()
}

func (s *Solver) clearAnalysisScratch() {
	for _, v := range s.analysisTouched {
		s.analysisSeen[v] = false
	}
}
