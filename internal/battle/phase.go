package battle

import "fmt"

// Phase is the battle-level lifecycle state. The engine itself is pure and
// phase-free; the Runner (or any other host loop) maintains this.
type Phase int

const (
	// PhaseNotStarted - roster supplied but no coin flip yet
	PhaseNotStarted Phase = iota

	// PhaseRunning - ticks are being resolved, teams alternating
	PhaseRunning

	// PhaseFinished - a winner was found or the host stopped the loop
	PhaseFinished
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// CanAdvance returns true if the battle can resolve further ticks.
func (p Phase) CanAdvance() bool {
	return p == PhaseRunning
}

// CanTransitionTo checks if a transition to the target phase is allowed.
func (p Phase) CanTransitionTo(target Phase) bool {
	switch p {
	case PhaseNotStarted:
		return target == PhaseRunning
	case PhaseRunning:
		return target == PhaseFinished
	default:
		return false
	}
}
