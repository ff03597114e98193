package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mj1618/runraisenext/internal/model"
	"github.com/mj1618/runraisenext/internal/mru"
	"github.com/mj1618/runraisenext/internal/platform"
)

// Store is the MRU snapshot the runner loads at the start of a run and
// saves after promoting the newly focused window. *mru.Store implements
// it; tests inject an in-memory fake.
type Store interface {
	Load() []model.Window
	Save(windows []model.Window) error
}

// Runner performs one decision-and-act cycle.
type Runner struct {
	Querier platform.WindowQuerier
	Focuser platform.WindowFocuser
	Exec    platform.CommandRunner
	Store   Store
}

// Result is the outcome of a run, printed as the command's output.
type Result struct {
	OK        bool          `yaml:"ok"                   json:"ok"`
	Action    string        `yaml:"action"               json:"action"`
	Window    *model.Window `yaml:"window,omitempty"     json:"window,omitempty"`
	Command   string        `yaml:"command,omitempty"    json:"command,omitempty"`
	SaveError string        `yaml:"save_error,omitempty" json:"save_error,omitempty"`
}

// Run loads and reconciles the MRU list, decides the action for the spec,
// and performs it. Focus and advance promote their target and save the
// snapshot; launch and no-op never touch it. A failed save is reported in
// the result but does not fail the run: the focus or launch the user
// asked for has already happened.
func (r *Runner) Run(spec model.WindowSpec) (Result, error) {
	live, err := r.Querier.ListWindows()
	if err != nil {
		return Result{}, fmt.Errorf("list windows: %w", err)
	}
	focused, err := r.Querier.FocusedWindow()
	if err != nil {
		log.Debug().Err(err).Msg("treating focus as unknown")
		focused = nil
	}

	ordered := mru.Reconcile(r.Store.Load(), live)
	decision := Decide(spec, ordered, focused)
	log.Debug().
		Str("action", string(decision.Action)).
		Int("windows", len(ordered)).
		Msg("decided")

	result := Result{OK: true, Action: string(decision.Action)}

	switch decision.Action {
	case ActionLaunch:
		result.Command = decision.Command
		if decision.Command == "" {
			return result, nil
		}
		if err := r.Exec.Run(decision.Command); err != nil {
			return Result{}, err
		}

	case ActionFocus, ActionAdvance:
		result.Window = decision.Target
		if err := r.Focuser.FocusWindow(*decision.Target); err != nil {
			// Best-effort: the window may have closed since it was
			// listed. The next run's reconciliation drops it.
			log.Warn().Err(err).Str("id", decision.Target.ID).Msg("focus failed")
		}
		promoted := mru.Promote(ordered, *decision.Target)
		if err := r.Store.Save(promoted); err != nil {
			log.Error().Err(err).Msg("could not save mru snapshot")
			result.SaveError = err.Error()
		}

	case ActionNone:
	}

	return result, nil
}
