// Package config loads window specs from the aliases file. The file maps
// alias names to window specs and is looked up case-insensitively, so a
// hotkey bound to "firefox" finds an alias written as "Firefox".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/runraisenext/internal/model"
)

// DefaultFile is the aliases file used when -f/--file is not given. The
// historical format is a JSON object, which the YAML decoder accepts
// unchanged; YAML works too.
const DefaultFile = "~/.runraisenext.json"

var (
	// ErrAliasNotFound means the aliases file has no entry for the
	// requested alias.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrDuplicateAlias means two aliases in the file fold to the same
	// case-insensitive name.
	ErrDuplicateAlias = errors.New("duplicate alias")
)

// Load reads the aliases file and returns the specs keyed by their
// case-folded alias. It fails when the file is unreadable, not a mapping,
// or defines the same case-folded alias twice.
func Load(path string) (map[string]model.WindowSpec, error) {
	resolved := ExpandHome(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read aliases file: %w", err)
	}

	var specs map[string]model.WindowSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse aliases file %s: %w", resolved, err)
	}

	folded := make(map[string]model.WindowSpec, len(specs))
	for name, spec := range specs {
		key := strings.ToLower(name)
		if _, ok := folded[key]; ok {
			return nil, fmt.Errorf("%w: %q is defined more than once in %s (aliases are case-insensitive)", ErrDuplicateAlias, key, resolved)
		}
		folded[key] = spec
	}
	return folded, nil
}

// Resolve looks up a single alias, case-insensitively.
func Resolve(alias, path string) (model.WindowSpec, error) {
	specs, err := Load(path)
	if err != nil {
		return model.WindowSpec{}, err
	}
	spec, ok := specs[strings.ToLower(alias)]
	if !ok {
		return model.WindowSpec{}, fmt.Errorf("%w: %q in %s", ErrAliasNotFound, alias, path)
	}
	return spec, nil
}

// Names returns the case-folded alias names in sorted order.
func Names(specs map[string]model.WindowSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExpandHome replaces a leading "~/" with the user's home directory. The
// path is returned unchanged when the home directory cannot be
// determined.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
