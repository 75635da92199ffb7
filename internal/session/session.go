package session

import (
	"sync"

	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/recipe"
)

// State is an immutable snapshot of a cooking session, safe to hand to
// any number of views. Views re-read state after each mutation; the
// session never pushes partial updates.
type State struct {
	RecipeID  string `json:"recipe_id"`
	Title     string `json:"title"`
	StepIndex int    `json:"step_index"`
	StepCount int    `json:"step_count"`
	StepText  string `json:"step_text"`
	IsFirst   bool   `json:"is_first"`
	IsLast    bool   `json:"is_last"`
}

// Listener is notified with a fresh snapshot after every mutation that
// moved the cursor. Listeners run on the mutating goroutine and must
// not call back into the session.
type Listener func(State)

// Session binds one recipe to one step navigator and makes the pair
// safe to share between the local TUI and companion connections.
//
// The navigator itself is single-owner state; all shared access goes
// through the session's mutex. There is exactly one navigator per
// session: independent views that want to follow along share the
// session by reference rather than keeping cursors of their own.
type Session struct {
	mu        sync.Mutex
	recipe    *recipe.Recipe
	nav       *StepNavigator
	listeners []Listener
}

// New creates a session for the given recipe, positioned at step 0.
func New(r *recipe.Recipe) *Session {
	return &Session{
		recipe: r,
		nav:    NewStepNavigator(r.Steps),
	}
}

// Recipe returns the recipe this session cooks. The recipe is immutable
// for the lifetime of the session; switching recipes means creating a
// new session (and therefore starting back at step 0).
func (s *Session) Recipe() *recipe.Recipe {
	return s.recipe
}

// Subscribe registers a listener for state changes. Intended to be
// called during setup, before the session is shared.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Advance moves to the next step and returns the resulting snapshot.
func (s *Session) Advance() State {
	return s.mutate("advance", func(n *StepNavigator) { n.Advance() })
}

// Retreat moves to the previous step and returns the resulting snapshot.
func (s *Session) Retreat() State {
	return s.mutate("retreat", func(n *StepNavigator) { n.Retreat() })
}

// JumpTo moves to the given step index, clamped, and returns the
// resulting snapshot.
func (s *Session) JumpTo(target int) State {
	return s.mutate("jump", func(n *StepNavigator) { n.JumpTo(target) })
}

// Reset returns to step 0 and returns the resulting snapshot.
func (s *Session) Reset() State {
	return s.mutate("reset", func(n *StepNavigator) { n.Reset() })
}

// Snapshot returns the current state without mutating anything.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) mutate(op string, fn func(*StepNavigator)) State {
	s.mu.Lock()

	oldIndex := s.nav.CurrentIndex()
	fn(s.nav)
	st := s.snapshotLocked()

	var notify []Listener
	if st.StepIndex != oldIndex {
		notify = append(notify, s.listeners...)
	}
	s.mu.Unlock()

	if st.StepIndex != oldIndex {
		logging.LogNavigation(st.RecipeID, op, oldIndex, st.StepIndex)
	}
	for _, l := range notify {
		l(st)
	}
	return st
}

func (s *Session) snapshotLocked() State {
	st := State{
		RecipeID:  s.recipe.ID,
		Title:     s.recipe.Title,
		StepIndex: s.nav.CurrentIndex(),
		StepCount: s.nav.Len(),
		IsFirst:   s.nav.IsFirst(),
		IsLast:    s.nav.IsLast(),
	}
	if step, ok := s.nav.Current(); ok {
		st.StepText = step.Text
	}
	return st
}
