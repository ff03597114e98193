package mru

import (
	"reflect"
	"testing"

	"github.com/mj1618/runraisenext/internal/model"
)

func win(id string) model.Window {
	return model.Window{ID: id}
}

func ids(windows []model.Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.ID
	}
	return out
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name   string
		stored []model.Window
		live   []model.Window
		want   []string
	}{
		{
			"empty_stored",
			nil,
			[]model.Window{win("0x1"), win("0x2")},
			[]string{"0x1", "0x2"},
		},
		{
			"empty_live_drops_everything",
			[]model.Window{win("0x1"), win("0x2")},
			nil,
			nil,
		},
		{
			"closed_windows_dropped",
			[]model.Window{win("0x1"), win("0x2"), win("0x3")},
			[]model.Window{win("0x1"), win("0x3")},
			[]string{"0x1", "0x3"},
		},
		{
			"new_windows_go_first_in_live_order",
			[]model.Window{win("0x1"), win("0x2")},
			[]model.Window{win("0x3"), win("0x1"), win("0x4"), win("0x2")},
			[]string{"0x3", "0x4", "0x1", "0x2"},
		},
		{
			"survivors_keep_relative_order",
			[]model.Window{win("0x2"), win("0x1"), win("0x3")},
			[]model.Window{win("0x1"), win("0x2"), win("0x3")},
			[]string{"0x2", "0x1", "0x3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.stored, tt.live)
			if !reflect.DeepEqual(ids(got), tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Reconcile() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	stored := []model.Window{win("0x2"), win("0x5"), win("0x1")}
	live := []model.Window{win("0x1"), win("0x2"), win("0x3"), win("0x4")}

	once := Reconcile(stored, live)
	twice := Reconcile(once, live)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("reconcile not idempotent: first %v, second %v", ids(once), ids(twice))
	}
}

func TestReconcile_DeduplicatesStored(t *testing.T) {
	// A snapshot written by an older build could contain duplicates;
	// reconcile must not let them through.
	stored := []model.Window{win("0x1"), win("0x2"), win("0x1")}
	live := []model.Window{win("0x1"), win("0x2")}

	got := Reconcile(stored, live)
	if !reflect.DeepEqual(ids(got), []string{"0x1", "0x2"}) {
		t.Errorf("Reconcile() = %v, want [0x1 0x2]", ids(got))
	}
}

func TestPromote(t *testing.T) {
	list := []model.Window{win("0x1"), win("0x2"), win("0x3"), win("0x4")}

	got := Promote(list, win("0x3"))
	want := []string{"0x3", "0x1", "0x2", "0x4"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Promote() = %v, want %v", ids(got), want)
	}
	if len(got) != len(list) {
		t.Errorf("length changed: %d != %d", len(got), len(list))
	}
}

func TestPromote_FrontIsNoop(t *testing.T) {
	list := []model.Window{win("0x1"), win("0x2")}
	got := Promote(list, win("0x1"))
	if !reflect.DeepEqual(ids(got), []string{"0x1", "0x2"}) {
		t.Errorf("Promote() = %v, want [0x1 0x2]", ids(got))
	}
}

func TestPromote_UnknownWindowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic promoting a window not in the list")
		}
	}()
	Promote([]model.Window{win("0x1")}, win("0x9"))
}
