package sat

import (
	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
)

// Sink receives structured, fire-and-forget log events at the key
// transitions of a solve: initial UNSAT, set_domain, propagate,
// updating watch, unit propagation, conflict initiation, resolution
// step, backjump, final solution. Implementations must be
// side-effect-only: the engine behaves identically whether or not a
// Sink is attached.
type Sink interface {
	Log(event string, fields map[string]any)
}

type discardSink struct{}

func (discardSink) Log(string, map[string]any) {}

// DiscardSink is the default Sink: it drops every event.
var DiscardSink Sink = discardSink{}

// logrusSink adapts a *logrus.Logger into a Sink.
type logrusSink struct {
	log *logrus.Logger
}

// NewLogrusSink builds a Sink backed by an existing logrus logger,
// logging every event at Debug level with its fields attached.
func NewLogrusSink(log *logrus.Logger) Sink {
	if log == nil {
		return DiscardSink
	}
	return &logrusSink{log: log}
}

func (s *logrusSink) Log(event string, fields map[string]any) {
	s.log.WithFields(logrus.Fields(fields)).Debug(event)
}

// dumpInvariant pretty-prints the offending state with k0kubun/pp.
// Used only on the InternalInvariant error path, never in
// steady-state solving.
func dumpInvariant(label string, v interface{}) {
	_, _ = pp.Println(label, v)
}
