//go:build linux

package x11

import "testing"

const wmctrlOutput = `0x02a00001  0 4346   Navigator.Firefox     mistakenot The Mock Class - Mock 1.0.1 documentation - Mozilla Firefox
0x02c00002 -1 4200   xterm.XTerm           mistakenot xterm
0x03000007  1 5120   gnome-terminal-server.Gnome-terminal mistakenot
`

func TestParseWindowList(t *testing.T) {
	windows := parseWindowList(wmctrlOutput)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}

	first := windows[0]
	if first.ID != "0x02a00001" {
		t.Errorf("id = %q", first.ID)
	}
	if first.Desktop != "0" || first.PID != "4346" || first.Machine != "mistakenot" {
		t.Errorf("unexpected fields: %+v", first)
	}
	if first.WMClass != "Navigator.Firefox" {
		t.Errorf("wm_class = %q", first.WMClass)
	}
	if first.Title != "The Mock Class - Mock 1.0.1 documentation - Mozilla Firefox" {
		t.Errorf("title = %q", first.Title)
	}

	if windows[1].Desktop != "-1" {
		t.Errorf("sticky desktop = %q, want -1", windows[1].Desktop)
	}
	if windows[2].Title != "" {
		t.Errorf("titleless window got title %q", windows[2].Title)
	}
}

func TestParseWindowList_SkipsMalformedLines(t *testing.T) {
	if got := parseWindowList("garbage\n\n0x1 0\n"); got != nil {
		t.Errorf("expected no windows, got %v", got)
	}
}

func TestParseActiveWindow(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		wantID string
		wantOK bool
	}{
		{"active", "_NET_ACTIVE_WINDOW(WINDOW): window id # 0x2a00001\n", "0x02a00001", true},
		{"trailing_comma", "_NET_ACTIVE_WINDOW(WINDOW): window id # 0x2a00001,\n", "0x02a00001", true},
		{"none_active", "_NET_ACTIVE_WINDOW(WINDOW): window id # 0x0\n", "", false},
		{"not_set", "_NET_ACTIVE_WINDOW:  not found.\n", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseActiveWindow(tt.out)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("parseActiveWindow() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestNormalizeWindowID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0x2a00001", "0x02a00001"},
		{"0x02A00001", "0x02a00001"},
		{"0x0", "0x00000000"},
		{"not-hex", "not-hex"},
	}
	for _, tt := range tests {
		if got := normalizeWindowID(tt.in); got != tt.want {
			t.Errorf("normalizeWindowID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
