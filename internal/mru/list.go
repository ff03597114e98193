// Package mru maintains the most-recently-used window ordering that the
// cycle decision relies on. The ordering is persisted between invocations
// as a private snapshot file and reconciled against the live window list
// at the start of each run.
package mru

import (
	"fmt"

	"github.com/mj1618/runraisenext/internal/model"
)

// Reconcile merges the stored MRU ordering with the live window list.
// Windows that have been closed since the last run are dropped; windows
// that have been opened since are placed at the front, in the order the
// window manager listed them, so a just-opened window is immediately the
// most recent. Surviving windows keep their prior relative order.
func Reconcile(stored, live []model.Window) []model.Window {
	liveByID := make(map[string]bool, len(live))
	for _, w := range live {
		liveByID[w.ID] = true
	}

	var kept []model.Window
	keptByID := make(map[string]bool, len(stored))
	for _, w := range stored {
		if liveByID[w.ID] && !keptByID[w.ID] {
			kept = append(kept, w)
			keptByID[w.ID] = true
		}
	}

	var result []model.Window
	for _, w := range live {
		if !keptByID[w.ID] {
			result = append(result, w)
		}
	}
	return append(result, kept...)
}

// Promote moves w to the front of the list, preserving the relative order
// of everything else. The window must be a member of the list; promoting
// an unknown window is a programming error and panics.
func Promote(list []model.Window, w model.Window) []model.Window {
	idx := -1
	for i, x := range list {
		if x.Same(w) {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("mru: promote of window %s which is not in the list", w.ID))
	}

	result := make([]model.Window, 0, len(list))
	result = append(result, list[idx])
	result = append(result, list[:idx]...)
	return append(result, list[idx+1:]...)
}
