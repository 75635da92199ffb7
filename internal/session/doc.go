// Package session implements cooking mode's state: a bounded cursor
// over a recipe's steps.
//
// # StepNavigator
//
// StepNavigator is the core state machine. Its only state is an integer
// cursor into a fixed step sequence, and its four operations (Advance,
// Retreat, JumpTo, Reset) keep that cursor inside [0, len-1] by clamping.
// Nothing here ever returns an error or panics: invalid input degrades to
// the nearest valid state. That permissiveness is a contract, not an
// oversight - step indices arrive from untrusted places (menu taps,
// companion devices) and pre-validating each caller would just move the
// off-by-one bugs around.
//
//	nav := session.NewStepNavigator(r.Steps)
//	nav.Advance()      // step 1
//	nav.JumpTo(999)    // clamps to the last step
//	nav.JumpTo(-1)     // clamps to step 0
//	nav.Reset()        // back to step 0
//
// IsFirst and IsLast are recomputed on every call; views use them to
// grey out the prev/next affordances at the boundaries.
//
// # Session
//
// Session wraps one navigator and its recipe behind a mutex so the
// local TUI and companion-server connections can share a single cursor.
// Mutations return an immutable State snapshot and notify subscribed
// listeners; views never reach into the navigator directly.
//
// Replacing the recipe means creating a new session, which starts back
// at step 0. The cursor is never preserved across a recipe change.
package session
