// Package ui provides souschef's shared styles and small reusable
// widgets: suggestion chips, a star rating, a toggle switch, and the
// cooking-step menu.
//
// The widgets follow the bubbles component convention - value receivers,
// Update returning the modified model plus an optional command - so they
// compose into any bubbletea screen:
//
//	chips := ui.NewChips([]string{"breakfast", "vegetarian"})
//	chips, cmd := chips.Update(msg)
//
// All of them are view widgets: they own nothing beyond their focus
// position and report user gestures as messages (ChipSelectedMsg,
// RatingChangedMsg, ToggleChangedMsg, StepChosenMsg) that the enclosing
// screen translates into real state changes. In particular, StepMenu
// emits whatever index the user chose and leaves range handling to the
// session's clamping JumpTo.
package ui
