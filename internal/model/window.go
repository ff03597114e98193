package model

// Window represents one top-level window reported by the window manager.
// Attribute values are kept as the strings the window manager printed;
// matching is substring-based so there is nothing to gain from parsing them.
type Window struct {
	ID      string `yaml:"id"                 json:"id"`
	Desktop string `yaml:"desktop,omitempty"  json:"desktop,omitempty"`
	PID     string `yaml:"pid,omitempty"      json:"pid,omitempty"`
	WMClass string `yaml:"wm_class,omitempty" json:"wm_class,omitempty"`
	Machine string `yaml:"machine,omitempty"  json:"machine,omitempty"`
	Title   string `yaml:"title,omitempty"    json:"title,omitempty"`
}

// Same reports whether two windows are the same window. The ID is the
// window manager's handle and uniquely identifies a window; every other
// attribute (title in particular) can change between invocations.
func (w Window) Same(o Window) bool {
	return w.ID == o.ID
}
