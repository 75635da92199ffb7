package protocol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mtreloar/souschef/internal/recipe"
	"github.com/mtreloar/souschef/internal/session"
)

func testSession() *session.Session {
	return session.New(&recipe.Recipe{
		ID:    "shakshuka",
		Title: "Shakshuka",
		Steps: []recipe.Step{
			{Text: "Soften the onion."},
			{Text: "Add the tomatoes."},
			{Text: "Poach the eggs."},
		},
	})
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantAction string
		wantTarget int
		wantErr    string
	}{
		{"advance", `{"type":"command","action":"advance"}`, ActionAdvance, 0, ""},
		{"retreat", `{"type":"command","action":"retreat"}`, ActionRetreat, 0, ""},
		{"jump", `{"type":"command","action":"jump","target":4}`, ActionJump, 4, ""},
		{"jump negative", `{"type":"command","action":"jump","target":-7}`, ActionJump, -7, ""},
		{"reset", `{"type":"command","action":"reset"}`, ActionReset, 0, ""},
		{"wrong type", `{"type":"state","action":"advance"}`, "", 0, "unexpected message type"},
		{"unknown action", `{"type":"command","action":"teleport"}`, "", 0, "unknown action"},
		{"not json", `advance please`, "", 0, "malformed message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("ParseCommand() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand() error = %v", err)
			}
			if cmd.Action != tt.wantAction || cmd.Target != tt.wantTarget {
				t.Errorf("ParseCommand() = %s/%d, want %s/%d",
					cmd.Action, cmd.Target, tt.wantAction, tt.wantTarget)
			}
		})
	}
}

func TestApply(t *testing.T) {
	s := testSession()

	st := Apply(&CommandMessage{Action: ActionAdvance}, s)
	if st.StepIndex != 1 {
		t.Errorf("advance: index = %d, want 1", st.StepIndex)
	}

	// Out-of-range jump clamps, never errors
	st = Apply(&CommandMessage{Action: ActionJump, Target: 999}, s)
	if st.StepIndex != 2 || !st.IsLast {
		t.Errorf("jump 999: index = %d (IsLast=%v), want 2 (true)", st.StepIndex, st.IsLast)
	}

	st = Apply(&CommandMessage{Action: ActionJump, Target: -1}, s)
	if st.StepIndex != 0 {
		t.Errorf("jump -1: index = %d, want 0", st.StepIndex)
	}

	st = Apply(&CommandMessage{Action: ActionRetreat}, s)
	if st.StepIndex != 0 {
		t.Errorf("retreat at 0: index = %d, want 0 (no-op)", st.StepIndex)
	}

	s.JumpTo(2)
	st = Apply(&CommandMessage{Action: ActionReset}, s)
	if st.StepIndex != 0 {
		t.Errorf("reset: index = %d, want 0", st.StepIndex)
	}
}

func TestEncodeState(t *testing.T) {
	s := testSession()
	s.Advance()

	data, err := EncodeState(s.Snapshot())
	if err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	var msg StateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if msg.Type != TypeState {
		t.Errorf("Type = %q, want %q", msg.Type, TypeState)
	}
	if msg.State.StepIndex != 1 || msg.State.StepCount != 3 {
		t.Errorf("State = %+v", msg.State)
	}
	if msg.State.StepText != "Add the tomatoes." {
		t.Errorf("StepText = %q", msg.State.StepText)
	}
}

func TestEncodeError(t *testing.T) {
	data, err := EncodeError("unknown action")
	if err != nil {
		t.Fatalf("EncodeError() error = %v", err)
	}

	var msg ErrorMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != TypeError || msg.Reason != "unknown action" {
		t.Errorf("decoded = %+v", msg)
	}
}
