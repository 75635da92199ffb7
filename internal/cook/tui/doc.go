// Package tui implements the full-screen terminal interface for souschef.
//
// This package provides the interactive cooking assistant: browsing the
// cookbook, stepping through a recipe hands-free, and rating the result.
// Built on the Bubble Tea framework, it follows the Elm architecture with
// immutable state updates and a Model-Update-View pattern.
//
// # Architecture
//
// The TUI is organized into three screens coordinated by AppModel:
//   - Browse: search and filter the cookbook, pick a recipe, optionally
//     scan the network for cooking companions
//   - Cooking: step through the recipe one instruction at a time, with a
//     progress bar, per-step timers, and a jump-to-step overlay
//   - Done: rate the finished recipe
//
// All screens render through a unified container (RenderApplicationContainer)
// for consistent layout with header, content area, and context-sensitive
// footer.
//
// # Framework Components
//
// The TUI leverages Bubble Tea framework components throughout:
//   - bubbles/list: the recipe list with card rendering
//   - bubbles/textinput: the cookbook search field
//   - bubbles/spinner: companion scan indicator
//   - bubbles/progress: recipe progress bar
//   - bubbles/timer: per-step countdown timers
//   - bubbles/help: context-aware key binding help
//   - lipgloss: styling and layout
//
// Reusable widgets (suggestion chips, star rating, toggles, the step menu)
// live in internal/ui and communicate through emitted messages.
//
// # Screen Flow
//
//  1. Browse Screen:
//     - Lists the cookbook sorted by title
//     - "/" opens a search field; tab focuses suggestion chips
//     - "d" scans the network (mDNS) for cooking companions
//     - Enter starts cooking the selected recipe
//
//  2. Cooking Screen:
//     - One instruction at a time with a step counter and progress bar
//     - →/n advance, ←/p go back; boundary presses are ignored, never
//       errors, and the position simply stays put
//     - "j" opens a jump-to-step menu, "r" restarts from the first step
//     - "t" starts or stops the current step's timer (if it has one)
//     - "s" opens preference toggles (keep awake, show timers)
//     - Enter on the last step finishes the cook
//
//  3. Done Screen:
//     - Star rating (0-5) via arrows or digit keys
//     - Enter saves the rating to the config registry
//
// # State Management
//
// Models contain all state; Update() returns a new model plus commands, and
// View() is a pure function of model state. Navigation state itself lives in
// a session.Session shared with the companion sync server, so a keypress in
// the terminal and a command from a companion device move the same cursor.
package tui
