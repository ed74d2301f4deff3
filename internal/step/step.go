// Package step models work that is advanced one unit at a time from a
// frame loop.
package step

// Status is the result of advancing a Stepper by one unit.
type Status uint8

const (
	// NotDone means more work may remain; poll again.
	NotDone Status = iota
	// Done means the work is finished. Further polls keep returning Done.
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "not done"
}

// Stepper advances a resumable job by at most one unit per call.
type Stepper interface {
	Step() Status
}

// Func adapts a plain function to Stepper.
type Func func() Status

// Step calls f.
func (f Func) Step() Status { return f() }

// Run advances s at most budget times, stopping early once it reports Done.
// A non-positive budget does nothing and reports NotDone.
func Run(s Stepper, budget int) Status {
	for i := 0; i < budget; i++ {
		if s.Step() == Done {
			return Done
		}
	}
	return NotDone
}

// Drain polls s until it reports Done and returns how many polls did work.
func Drain(s Stepper) int {
	n := 0
	for s.Step() != Done {
		n++
	}
	return n
}
