package sat

// Strategy is the pluggable decision policy: which variable to branch
// on next, and which value to try first. The engine itself stays
// undifferentiated — callers inject a Strategy value rather than the
// engine dispatching on a class hierarchy.
type Strategy interface {
	// ChooseValue picks the polarity to try first for a variable whose
	// domain is d (necessarily non-singleton).
	ChooseValue(d Domain) bool
	// FirstVarToChoose returns the next candidate variable to examine,
	// given the variable chosen by the previous decision (0 if there
	// was none yet).
	FirstVarToChoose(prev Var) Var
}

// defaultStrategy scans from the previous decision variable circularly
// for any non-singleton variable, and always starts with false. It is
// deliberately not activity-based: no variable-activity bookkeeping is
// maintained, just a round-robin scan.
type defaultStrategy struct {
	numVars func() Var
}

// NewDefaultStrategy builds the minimal scan-and-assign-false policy.
func NewDefaultStrategy() Strategy {
	return &defaultStrategy{}
}

func (defaultStrategy) ChooseValue(Domain) bool {
	return false
}

func (d *defaultStrategy) FirstVarToChoose(prev Var) Var {
	return prev + 1
}
