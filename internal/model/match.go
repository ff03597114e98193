package model

import "strings"

// Matches reports whether the window satisfies the spec: every non-empty
// spec attribute must be a case-insensitive substring of the window's
// attribute. A spec of ".Firefox" for wm_class matches a window whose
// wm_class is "Navigator.Firefox". A spec with no match fields matches
// every window. Command is ignored.
func Matches(w Window, s WindowSpec) bool {
	pairs := []struct{ want, have string }{
		{s.ID, w.ID},
		{s.Desktop, w.Desktop},
		{s.PID, w.PID},
		{s.WMClass, w.WMClass},
		{s.Machine, w.Machine},
		{s.Title, w.Title},
	}
	for _, p := range pairs {
		if p.want == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(p.have), strings.ToLower(p.want)) {
			return false
		}
	}
	return true
}

// MatchingWindows filters windows to those matching the spec, preserving
// the input order.
func MatchingWindows(windows []Window, s WindowSpec) []Window {
	var result []Window
	for _, w := range windows {
		if Matches(w, s) {
			result = append(result, w)
		}
	}
	return result
}
