package session

import (
	"github.com/mtreloar/souschef/internal/recipe"
)

// StepNavigator owns a bounded cursor over a fixed sequence of recipe steps.
//
// Every operation is a total function: out-of-range input is clamped into
// [0, len-1] instead of returning an error. Callers pass arbitrary indices
// (a tap on the step menu, a jump command from a companion device) without
// pre-validating, and the navigator absorbs whatever arrives. Over-advancing
// past the last step is a normal boundary condition, not a failure.
//
// A navigator is owned by a single caller and is not safe for concurrent
// use; Session adds locking for shared access.
type StepNavigator struct {
	steps []recipe.Step
	index int
}

// NewStepNavigator creates a navigator positioned at step 0.
// The steps slice is not copied; callers must not mutate it afterwards.
// A nil or empty slice yields a navigator where every operation is a
// no-op at index 0.
func NewStepNavigator(steps []recipe.Step) *StepNavigator {
	return &StepNavigator{steps: steps}
}

// Advance moves to the next step. No-op when already at the last step.
func (n *StepNavigator) Advance() {
	if n.index < len(n.steps)-1 {
		n.index++
	}
}

// Retreat moves to the previous step. No-op when already at step 0.
func (n *StepNavigator) Retreat() {
	if n.index > 0 {
		n.index--
	}
}

// JumpTo moves directly to target, clamped into the valid range.
// Any integer is accepted: negative targets land on the first step,
// targets past the end land on the last step.
func (n *StepNavigator) JumpTo(target int) {
	n.index = n.clamp(target)
}

// Reset returns to step 0 unconditionally.
func (n *StepNavigator) Reset() {
	n.index = 0
}

// CurrentIndex returns the cursor position.
func (n *StepNavigator) CurrentIndex() int {
	return n.index
}

// Len returns the number of steps.
func (n *StepNavigator) Len() int {
	return len(n.steps)
}

// IsFirst reports whether the cursor is on the first step.
func (n *StepNavigator) IsFirst() bool {
	return n.index == 0
}

// IsLast reports whether the cursor is on the last step.
// False for an empty sequence.
func (n *StepNavigator) IsLast() bool {
	return len(n.steps) > 0 && n.index == len(n.steps)-1
}

// Current returns the step under the cursor. The second return value
// is false only for an empty sequence.
func (n *StepNavigator) Current() (recipe.Step, bool) {
	if len(n.steps) == 0 {
		return recipe.Step{}, false
	}
	return n.steps[n.index], true
}

// Progress returns how far through the steps the cursor is, in [0, 1].
// A single-step recipe reports 1; an empty one reports 0.
func (n *StepNavigator) Progress() float64 {
	switch len(n.steps) {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return float64(n.index) / float64(len(n.steps)-1)
	}
}

func (n *StepNavigator) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(n.steps)-1 {
		if len(n.steps) == 0 {
			return 0
		}
		return len(n.steps) - 1
	}
	return index
}
