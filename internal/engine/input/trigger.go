package input

// TriggerState is the state of a sampled boolean trigger.
type TriggerState int

const (
	Released TriggerState = iota
	Pressed
)

// Transition advances a trigger state machine by one frame sample.
// fired is true only on the rising edge (Released -> Pressed), so a
// held trigger fires exactly once per press-and-release cycle.
func Transition(prev TriggerState, sample bool) (next TriggerState, fired bool) {
	if sample {
		return Pressed, prev == Released
	}
	return Released, false
}

// Trigger wraps Transition with the previous-frame state, for callers
// that sample a key once per frame.
type Trigger struct {
	state TriggerState
}

// Update feeds one frame's sample and reports whether the trigger
// fired this frame.
func (t *Trigger) Update(sample bool) bool {
	next, fired := Transition(t.state, sample)
	t.state = next
	return fired
}
