package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a pipeline phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names emitted by ResolveUnits.
const (
	PhaseDeclare = "declare"
	PhaseResolve = "resolve"
)

// PhaseEvent describes a timing phase boundary. Elapsed is zero for
// PhaseStart events.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during ResolveUnits.
// A nil observer is ignored.
type PhaseObserver func(PhaseEvent)

func (o PhaseObserver) observe(name string) func() {
	if o == nil {
		return func() {}
	}
	start := time.Now()
	o(PhaseEvent{Name: name, Status: PhaseStart})
	return func() {
		o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
	}
}
