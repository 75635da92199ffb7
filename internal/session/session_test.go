package session

import (
	"sync"
	"testing"

	"github.com/mtreloar/souschef/internal/recipe"
)

func testSession() *Session {
	return New(&recipe.Recipe{
		ID:    "shakshuka",
		Title: "Shakshuka",
		Steps: makeSteps(3),
	})
}

func TestSessionSnapshot(t *testing.T) {
	s := testSession()
	st := s.Snapshot()

	if st.RecipeID != "shakshuka" {
		t.Errorf("RecipeID = %q", st.RecipeID)
	}
	if st.StepIndex != 0 || st.StepCount != 3 {
		t.Errorf("StepIndex/StepCount = %d/%d, want 0/3", st.StepIndex, st.StepCount)
	}
	if !st.IsFirst || st.IsLast {
		t.Errorf("IsFirst/IsLast = %v/%v, want true/false", st.IsFirst, st.IsLast)
	}
	if st.StepText != "step 0" {
		t.Errorf("StepText = %q", st.StepText)
	}
}

func TestSessionOperationsReturnState(t *testing.T) {
	s := testSession()

	if st := s.Advance(); st.StepIndex != 1 {
		t.Errorf("Advance() returned index %d, want 1", st.StepIndex)
	}
	if st := s.JumpTo(999); st.StepIndex != 2 || !st.IsLast {
		t.Errorf("JumpTo(999) returned index %d (IsLast=%v), want 2 (true)", st.StepIndex, st.IsLast)
	}
	if st := s.Retreat(); st.StepIndex != 1 {
		t.Errorf("Retreat() returned index %d, want 1", st.StepIndex)
	}
	if st := s.Reset(); st.StepIndex != 0 {
		t.Errorf("Reset() returned index %d, want 0", st.StepIndex)
	}
}

func TestSessionNotifiesOnChange(t *testing.T) {
	s := testSession()

	var got []State
	s.Subscribe(func(st State) { got = append(got, st) })

	s.Advance()    // 0 -> 1: notify
	s.Advance()    // 1 -> 2: notify
	s.Advance()    // boundary no-op: no notification
	s.JumpTo(2)    // already there: no notification
	s.Reset()      // 2 -> 0: notify

	if len(got) != 3 {
		t.Fatalf("listener called %d times, want 3", len(got))
	}
	if got[0].StepIndex != 1 || got[1].StepIndex != 2 || got[2].StepIndex != 0 {
		t.Errorf("listener saw indices %d,%d,%d; want 1,2,0",
			got[0].StepIndex, got[1].StepIndex, got[2].StepIndex)
	}
}

// Concurrent mutators must never observe an out-of-range cursor. The
// navigator itself is single-owner; this exercises the session's lock.
func TestSessionConcurrentAccess(t *testing.T) {
	s := testSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				var st State
				switch (seed + j) % 4 {
				case 0:
					st = s.Advance()
				case 1:
					st = s.Retreat()
				case 2:
					st = s.JumpTo(j - 100)
				case 3:
					st = s.Reset()
				}
				if st.StepIndex < 0 || st.StepIndex >= st.StepCount {
					t.Errorf("snapshot index %d out of range [0,%d)", st.StepIndex, st.StepCount)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
