package model

// WindowSpec describes the windows an alias targets. Each non-empty
// attribute is a required case-insensitive substring of the corresponding
// window attribute. Command is the shell command that launches the app
// when no window matches; it takes no part in matching.
type WindowSpec struct {
	ID      string `yaml:"id,omitempty"       json:"id,omitempty"`
	Desktop string `yaml:"desktop,omitempty"  json:"desktop,omitempty"`
	PID     string `yaml:"pid,omitempty"      json:"pid,omitempty"`
	WMClass string `yaml:"wm_class,omitempty" json:"wm_class,omitempty"`
	Machine string `yaml:"machine,omitempty"  json:"machine,omitempty"`
	Title   string `yaml:"title,omitempty"    json:"title,omitempty"`
	Command string `yaml:"command,omitempty"  json:"command,omitempty"`
}

// HasMatchFields reports whether the spec constrains any window attribute.
// A spec with only a command (or nothing at all) targets no windows and
// always launches.
func (s WindowSpec) HasMatchFields() bool {
	return s.ID != "" || s.Desktop != "" || s.PID != "" ||
		s.WMClass != "" || s.Machine != "" || s.Title != ""
}

// Merge returns s with every non-empty field of o overlaid on top.
// Used to apply explicit command-line flags over an alias spec from the
// config file.
func (s WindowSpec) Merge(o WindowSpec) WindowSpec {
	if o.ID != "" {
		s.ID = o.ID
	}
	if o.Desktop != "" {
		s.Desktop = o.Desktop
	}
	if o.PID != "" {
		s.PID = o.PID
	}
	if o.WMClass != "" {
		s.WMClass = o.WMClass
	}
	if o.Machine != "" {
		s.Machine = o.Machine
	}
	if o.Title != "" {
		s.Title = o.Title
	}
	if o.Command != "" {
		s.Command = o.Command
	}
	return s
}
