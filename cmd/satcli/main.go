package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/michael-veksler/solver/dimacs"
	"github.com/michael-veksler/solver/sat"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "Debug mode: log every propagation/backjump event and dump state on invariant failures",
		},
		cli.StringFlag{
			Name:  "solver",
			Usage: "Which solver to run: cdcl or trivial",
			Value: "cdcl",
		},
		cli.IntFlag{
			Name:  "max-backtracks",
			Usage: "Backtrack/attempt budget; non-positive means unbounded",
			Value: -1,
		},
	}
}

func printModel(numVars sat.Var, s *sat.Solver) {
	fmt.Print("v ")
	for v := sat.Var(1); v <= numVars; v++ {
		val, err := s.Value(v)
		if err != nil {
			log.Fatal(err)
		}
		if val {
			fmt.Printf("%d ", v)
		} else {
			fmt.Printf("%d ", -int64(v))
		}
	}
	fmt.Print("0\n")
}

func run(c *cli.Context) (runErr error) {
	if c.NArg() < 1 {
		return fmt.Errorf("input cnf file is required")
	}
	inputFile := c.Args().Get(0)

	fp, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer fp.Close()

	debug := c.Bool("debug")
	var sink sat.Sink = sat.DiscardSink
	if debug {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		sink = sat.NewLogrusSink(log)

		// An InternalInvariant failure is a solver bug, not a usage
		// error: Solve panics rather than returning one. In debug mode,
		// catch it and pretty-print the offending state before turning
		// it into a normal error return.
		defer func() {
			if r := recover(); r != nil {
				satErr, ok := r.(*sat.Error)
				if !ok {
					panic(r)
				}
				_, _ = pp.Println("internal invariant violated", satErr)
				runErr = satErr
			}
		}()
	}

	maxBacktracks := c.Int("max-backtracks")
	strategy := sat.NewDefaultStrategy()
	solver := sat.NewSolver(maxBacktracks, strategy, sink)

	header, err := dimacs.LoadInto(fp, solver)
	if err != nil {
		return err
	}

	start := time.Now()
	var status sat.Status

	switch c.String("solver") {
	case "trivial":
		// The trivial reference solver has its own clause store; reload
		// the same clauses into it rather than sharing sat.Solver state.
		fp2, err := os.Open(inputFile)
		if err != nil {
			return err
		}
		defer fp2.Close()
		_, clauses, err := dimacs.Decode(fp2)
		if err != nil {
			return err
		}
		trivial := sat.NewTrivialSolver(sat.Var(header.NumVars), maxBacktracks)
		for _, clause := range clauses {
			lits := make([]sat.Literal, len(clause))
			for i, x := range clause {
				lits[i] = sat.LiteralFromInt(x)
			}
			trivial.AddClause(lits)
		}
		var model []bool
		status, model = trivial.Solve()
		if status == sat.StatusSAT {
			fmt.Println("\ns SATISFIABLE")
			fmt.Print("v ")
			for v := 1; v < len(model); v++ {
				if model[v] {
					fmt.Printf("%d ", v)
				} else {
					fmt.Printf("%d ", -v)
				}
			}
			fmt.Print("0\n")
		}
	default:
		status, err = solver.Solve()
		if err != nil {
			return err
		}
		if status == sat.StatusSAT {
			fmt.Println("\ns SATISFIABLE")
			printModel(sat.Var(header.NumVars), solver)
		}
	}

	switch status {
	case sat.StatusUNSAT:
		fmt.Println("\ns UNSATISFIABLE")
	case sat.StatusUnknown:
		fmt.Println("\ns UNKNOWN")
	}

	fmt.Fprintf(os.Stderr, "c solve time: %v\n", time.Since(start))
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "satcli"
	app.Usage = "A CDCL/trivial SAT solver over DIMACS CNF input"
	app.Flags = getFlags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
