package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/mtreloar/souschef/internal/session"
)

// Message types exchanged with companion clients. Every message is a
// JSON object with a "type" field.
const (
	TypeState   = "state"   // server -> client: session snapshot
	TypeCommand = "command" // client -> server: navigation request
	TypeError   = "error"   // server -> client: rejected message
)

// Navigation actions a companion client may request.
const (
	ActionAdvance = "advance"
	ActionRetreat = "retreat"
	ActionJump    = "jump"
	ActionReset   = "reset"
)

// Envelope is the outer shape of every message on the wire.
type Envelope struct {
	Type string `json:"type"`
}

// StateMessage carries a session snapshot to companion clients. Sent on
// connect and after every cursor move.
type StateMessage struct {
	Type  string        `json:"type"`
	State session.State `json:"state"`
}

// CommandMessage is a navigation request from a companion client.
// Target is only meaningful for the "jump" action.
type CommandMessage struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Target int    `json:"target,omitempty"`
}

// ErrorMessage reports a rejected client message. Navigation commands
// themselves never fail - only messages that don't parse or name an
// unknown action are rejected.
type ErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// EncodeState marshals a state message for the given snapshot.
func EncodeState(st session.State) ([]byte, error) {
	return json.Marshal(StateMessage{Type: TypeState, State: st})
}

// EncodeError marshals an error message.
func EncodeError(reason string) ([]byte, error) {
	return json.Marshal(ErrorMessage{Type: TypeError, Reason: reason})
}

// ParseCommand decodes and validates a client message. It checks shape
// only: the action must be known, but jump targets are deliberately NOT
// range-checked here. Companion clients don't know the step count, so
// out-of-range targets are normal input; the navigator clamps them.
func ParseCommand(data []byte) (*CommandMessage, error) {
	var cmd CommandMessage
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}

	if cmd.Type != TypeCommand {
		return nil, fmt.Errorf("unexpected message type %q", cmd.Type)
	}

	switch cmd.Action {
	case ActionAdvance, ActionRetreat, ActionJump, ActionReset:
		return &cmd, nil
	default:
		return nil, fmt.Errorf("unknown action %q", cmd.Action)
	}
}

// Apply executes a parsed command against a session and returns the
// resulting snapshot. Total by construction: any valid command yields
// a valid state.
func Apply(cmd *CommandMessage, s *session.Session) session.State {
	switch cmd.Action {
	case ActionAdvance:
		return s.Advance()
	case ActionRetreat:
		return s.Retreat()
	case ActionJump:
		return s.JumpTo(cmd.Target)
	case ActionReset:
		return s.Reset()
	default:
		// ParseCommand guarantees a known action; fall back to a read
		return s.Snapshot()
	}
}
