package mru

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mj1618/runraisenext/internal/model"
)

// DefaultSnapshotFile is the snapshot location used when --state-file is
// not given.
const DefaultSnapshotFile = "~/.runraisenext.mru.json"

// Store persists the MRU window list between invocations as a JSON
// snapshot. The snapshot is a private cache, not an interface: a missing
// or unreadable file is treated as an empty list, never as an error.
type Store struct {
	path string
}

// NewStore returns a store backed by the given snapshot path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the resolved snapshot path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted MRU list. On any read or decode failure it
// returns an empty list: the snapshot rebuilds itself from the live
// window list on the next save, so stale or corrupt state is never worth
// failing a run over.
func (s *Store) Load() []model.Window {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("no mru snapshot, starting empty")
		return nil
	}
	var windows []model.Window
	if err := json.Unmarshal(data, &windows); err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("discarding unreadable mru snapshot")
		return nil
	}
	return windows
}

// Save writes the MRU list to the snapshot path. The snapshot is written
// to a temp file in the same directory and renamed into place, so a crash
// mid-write leaves the previous snapshot intact.
func (s *Store) Save(windows []model.Window) error {
	data, err := json.Marshal(windows)
	if err != nil {
		return fmt.Errorf("encode mru snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".runraisenext-mru-*")
	if err != nil {
		return fmt.Errorf("create mru snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write mru snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write mru snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace mru snapshot: %w", err)
	}
	return nil
}
