// Package engine decides and performs one run/raise/next cycle. Decide is
// the pure decision function; Runner wires it to the window manager, the
// launcher and the MRU snapshot.
package engine

import "github.com/mj1618/runraisenext/internal/model"

// Action is what a run should do.
type Action string

const (
	// ActionLaunch runs the spec's command (a no-op when it has none).
	ActionLaunch Action = "launch"
	// ActionFocus jumps to the app's most-recently-used window.
	ActionFocus Action = "focus"
	// ActionAdvance cycles to the app's next window.
	ActionAdvance Action = "advance"
	// ActionNone leaves everything as it is.
	ActionNone Action = "none"
)

// Decision is the outcome of Decide. Target is set for focus and advance,
// Command for launch.
type Decision struct {
	Action  Action
	Target  *model.Window
	Command string
}

// Decide picks the action for one invocation given the spec, the
// reconciled MRU-ordered window list and the currently focused window
// (nil when none). It is pure and total: every input produces exactly one
// decision.
//
// Launch when the spec targets no windows, when no windows are open, or
// when none match. Focus the most-recently-used match when the app isn't
// focused. Do nothing when the app's only window is already focused.
// Otherwise advance through the app's windows: the contiguous run of
// matching windows at the front of the MRU list is the set already
// visited this cycle (each focus promotes its target to the front, so
// cycling piles the visited windows up there), and the next target is the
// first match outside it. Once every match has been visited, wrap to the
// least-recently-used match and start over.
func Decide(spec model.WindowSpec, ordered []model.Window, focused *model.Window) Decision {
	if !spec.HasMatchFields() {
		return Decision{Action: ActionLaunch, Command: spec.Command}
	}
	if len(ordered) == 0 {
		return Decision{Action: ActionLaunch, Command: spec.Command}
	}

	matching := model.MatchingWindows(ordered, spec)
	if len(matching) == 0 {
		return Decision{Action: ActionLaunch, Command: spec.Command}
	}

	if focused == nil || !containsWindow(matching, *focused) {
		return Decision{Action: ActionFocus, Target: &matching[0]}
	}

	if len(matching) == 1 {
		return Decision{Action: ActionNone}
	}

	if next := firstUnvisited(matching, ordered); next != nil {
		return Decision{Action: ActionAdvance, Target: next}
	}
	return Decision{Action: ActionAdvance, Target: &matching[len(matching)-1]}
}

// firstUnvisited returns the first matching window outside the visited
// prefix, or nil when the whole cycle has been visited. The visited
// prefix is the run of matching windows at the front of the MRU list,
// ending at the first non-matching window.
func firstUnvisited(matching, ordered []model.Window) *model.Window {
	visited := make(map[string]bool, len(matching))
	for _, w := range ordered {
		if !containsWindow(matching, w) {
			break
		}
		visited[w.ID] = true
	}
	for i := range matching {
		if !visited[matching[i].ID] {
			return &matching[i]
		}
	}
	return nil
}

func containsWindow(windows []model.Window, w model.Window) bool {
	for _, x := range windows {
		if x.Same(w) {
			return true
		}
	}
	return false
}
