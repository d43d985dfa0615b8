/*
Package sat implements a Boolean satisfiability engine: a reference
exhaustive backtracker and a Conflict-Driven Clause-Learning (CDCL)
solver sharing the same clause and watched-literal representation.

Describing a problem

Variables are added one at a time and clauses are built with a
ClauseBuilder:

    s := sat.NewSolver(-1, nil, nil)
    a, _ := s.AddVar()
    b, _ := s.AddVar()
    cb := s.AddClause()
    cb.AddLiteral(a, true)
    cb.AddLiteral(b, false)

Solving a problem

    status, err := s.Solve()
    switch status {
    case sat.StatusSAT:
        v, _ := s.Value(a)
        fmt.Println(v)
    case sat.StatusUNSAT:
        fmt.Println("no satisfying assignment")
    case sat.StatusUnknown:
        fmt.Println("backtrack budget exhausted")
    }

The package also exposes TrivialSolver, an exhaustive depth-first
solver used as a differential-testing oracle: for any instance both
solvers must agree on SAT/UNSAT.
*/
package sat
