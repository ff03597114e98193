package engine

import (
	"testing"

	"github.com/mj1618/runraisenext/internal/model"
)

var (
	w1 = model.Window{ID: "0x1", WMClass: "Navigator.Firefox", Title: "docs"}
	w2 = model.Window{ID: "0x2", WMClass: "Navigator.Firefox", Title: "mail"}
	w3 = model.Window{ID: "0x3", WMClass: "xterm.XTerm", Title: "xterm"}
)

var firefox = model.WindowSpec{WMClass: "Firefox", Command: "firefox"}

func TestDecide_CommandOnlySpecLaunches(t *testing.T) {
	// A spec with no match fields always launches, whatever is open or
	// focused.
	spec := model.WindowSpec{Command: "firefox"}
	d := Decide(spec, []model.Window{w1, w2, w3}, &w1)
	if d.Action != ActionLaunch {
		t.Fatalf("action = %s, want launch", d.Action)
	}
	if d.Command != "firefox" {
		t.Errorf("command = %q", d.Command)
	}
}

func TestDecide_EmptySpecLaunchesNothing(t *testing.T) {
	d := Decide(model.WindowSpec{}, []model.Window{w1}, &w1)
	if d.Action != ActionLaunch || d.Command != "" {
		t.Errorf("decision = %+v, want empty launch", d)
	}
}

func TestDecide_NoOpenWindowsLaunches(t *testing.T) {
	d := Decide(firefox, nil, nil)
	if d.Action != ActionLaunch || d.Command != "firefox" {
		t.Errorf("decision = %+v, want launch firefox", d)
	}
}

func TestDecide_NoMatchingWindowsLaunches(t *testing.T) {
	d := Decide(firefox, []model.Window{w3}, &w3)
	if d.Action != ActionLaunch {
		t.Errorf("action = %s, want launch", d.Action)
	}
}

func TestDecide_AppNotFocusedFocusesMostRecent(t *testing.T) {
	// w2 is the app's most recently used window; w3 (another app) is
	// focused.
	d := Decide(firefox, []model.Window{w3, w2, w1}, &w3)
	if d.Action != ActionFocus {
		t.Fatalf("action = %s, want focus", d.Action)
	}
	if d.Target.ID != w2.ID {
		t.Errorf("target = %s, want %s", d.Target.ID, w2.ID)
	}
}

func TestDecide_NothingFocusedFocusesMostRecent(t *testing.T) {
	d := Decide(firefox, []model.Window{w1, w2, w3}, nil)
	if d.Action != ActionFocus || d.Target.ID != w1.ID {
		t.Errorf("decision = %+v, want focus %s", d, w1.ID)
	}
}

func TestDecide_SingleFocusedWindowIsNoop(t *testing.T) {
	d := Decide(firefox, []model.Window{w1, w3}, &w1)
	if d.Action != ActionNone {
		t.Errorf("action = %s, want none", d.Action)
	}
}

func TestDecide_AdvanceToUnvisited(t *testing.T) {
	// Visited prefix is [w1]; w2 has not been cycled through yet.
	d := Decide(firefox, []model.Window{w1, w2, w3}, &w1)
	if d.Action != ActionAdvance {
		t.Fatalf("action = %s, want advance", d.Action)
	}
	if d.Target.ID != w2.ID {
		t.Errorf("target = %s, want %s", d.Target.ID, w2.ID)
	}
}

func TestDecide_AdvanceAfterPromotion(t *testing.T) {
	// After the previous advance promoted w2, the visited prefix is
	// [w2] and the cycle continues with w1.
	d := Decide(firefox, []model.Window{w2, w1, w3}, &w2)
	if d.Action != ActionAdvance {
		t.Fatalf("action = %s, want advance", d.Action)
	}
	if d.Target.ID != w1.ID {
		t.Errorf("target = %s, want %s", d.Target.ID, w1.ID)
	}
}

func TestDecide_AdvanceWrapsToLeastRecent(t *testing.T) {
	// Both matching windows sit in the visited prefix: the cycle is
	// complete and wraps to the least-recently-used match.
	d := Decide(firefox, []model.Window{w2, w1, w3}, &w1)
	if d.Action != ActionAdvance {
		t.Fatalf("action = %s, want advance", d.Action)
	}
	if d.Target.ID != w1.ID {
		t.Errorf("wrap target = %s, want matching[-1] = %s", d.Target.ID, w1.ID)
	}
}

func TestDecide_PrefixEndsAtFirstNonMatch(t *testing.T) {
	// w2 sits behind a non-matching window, so it is outside the
	// visited prefix even though it is the app's window.
	d := Decide(firefox, []model.Window{w1, w3, w2}, &w1)
	if d.Action != ActionAdvance {
		t.Fatalf("action = %s, want advance", d.Action)
	}
	if d.Target.ID != w2.ID {
		t.Errorf("target = %s, want %s", d.Target.ID, w2.ID)
	}
}

func TestDecide_Total(t *testing.T) {
	// Every combination of inputs produces exactly one of the four
	// actions.
	specs := []model.WindowSpec{{}, firefox, {Command: "x"}, {Title: "docs"}}
	orders := [][]model.Window{nil, {w1}, {w1, w2}, {w3, w1, w2}}
	focuses := []*model.Window{nil, &w1, &w3}

	for _, s := range specs {
		for _, o := range orders {
			for _, f := range focuses {
				d := Decide(s, o, f)
				switch d.Action {
				case ActionLaunch, ActionFocus, ActionAdvance, ActionNone:
				default:
					t.Fatalf("unexpected action %q for spec=%+v", d.Action, s)
				}
				if (d.Action == ActionFocus || d.Action == ActionAdvance) && d.Target == nil {
					t.Fatalf("%s decision without target", d.Action)
				}
			}
		}
	}
}
