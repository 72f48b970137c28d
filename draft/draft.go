// Package draft persists not-yet-submitted wizard snapshots outside the
// document store, keyed by form identity so multiple forms never clobber
// each other.
package draft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Snapshot is the serialized shape of an in-progress wizard. When the
// draft already materialized as a remote record, RecordID and
// RecordNumber carry that identity so a later session updates it
// instead of creating a second one.
type Snapshot struct {
	FormData       map[string]any `json:"formData"`
	CurrentSection int            `json:"currentSection"`
	RecordID       string         `json:"recordId,omitempty"`
	RecordNumber   string         `json:"recordNumber,omitempty"`
}

// Store saves, restores and clears one draft per form identity.
type Store interface {
	Save(formID string, snap Snapshot) error
	Load(formID string) (Snapshot, bool, error)
	Clear(formID string) error
}

// Memory is the in-process Store used by tests and single-session tools.
type Memory struct {
	mu    sync.Mutex
	snaps map[string]Snapshot
}

func NewMemory() *Memory {
	return &Memory{snaps: map[string]Snapshot{}}
}

func (m *Memory) Save(formID string, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[formID] = snap
	return nil
}

func (m *Memory) Load(formID string) (Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[formID]
	return snap, ok, nil
}

func (m *Memory) Clear(formID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, formID)
	return nil
}

// Files persists one JSON file per form identity under a directory.
type Files struct {
	dir string
}

func NewFiles(dir string) (*Files, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, errors.Wrap(err, "draft.files.mkdir")
	}
	return &Files{dir: dir}, nil
}

func (f *Files) path(formID string) string {
	return filepath.Join(f.dir, formID+".draft.json")
}

func (f *Files) Save(formID string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "draft.files.marshal")
	}
	return errors.Wrap(os.WriteFile(f.path(formID), data, 0o644), "draft.files.write")
}

func (f *Files) Load(formID string) (Snapshot, bool, error) {
	data, err := os.ReadFile(f.path(formID))
	if os.IsNotExist(err) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, errors.Wrap(err, "draft.files.read")
	}

	var snap Snapshot
	err = json.Unmarshal(data, &snap)
	if err != nil {
		return Snapshot{}, false, errors.Wrap(err, "draft.files.unmarshal")
	}
	return snap, true, nil
}

func (f *Files) Clear(formID string) error {
	err := os.Remove(f.path(formID))
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Wrap(err, "draft.files.clear")
}
