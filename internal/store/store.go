// Package store persists the best-score record that outlives game sessions.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Key names the single record every store holds.
const Key = "snake-game-data"

// ErrCorrupt is returned when a stored record cannot be decoded.
var ErrCorrupt = errors.New("corrupt score record")

// Record is the persisted best score.
type Record struct {
	HighScore int `json:"highScore"`
}

// Store loads and saves the Record. A store with nothing saved yet loads the
// zero Record without error.
type Store interface {
	Load() (Record, error)
	Save(Record) error
}

// Raise persists score when it beats the stored high score and reports the
// resulting record. The stored value never decreases.
func Raise(s Store, current Record, score int) (Record, bool, error) {
	if score <= current.HighScore {
		return current, false, nil
	}
	next := Record{HighScore: score}
	if err := s.Save(next); err != nil {
		return next, true, err
	}
	return next, true, nil
}

// FileStore keeps the record as JSON in <Dir>/snake-game-data.json.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// DefaultDir returns the per-user directory records are kept in.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "gridsnake"), nil
}

// Path returns the file backing the record.
func (f *FileStore) Path() string {
	return filepath.Join(f.Dir, Key+".json")
}

// Load reads the record from disk.
func (f *FileStore) Load() (Record, error) {
	data, err := os.ReadFile(f.Path())
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.Path(), err)
	}
	if rec.HighScore < 0 {
		return Record{}, fmt.Errorf("%w: %s: negative high score %d", ErrCorrupt, f.Path(), rec.HighScore)
	}
	return rec, nil
}

// Save writes the record through a temporary file so readers never see a
// partial write.
func (f *FileStore) Save(rec Record) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.Dir, Key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.Path())
}

// MemoryStore keeps the record in memory. It is used when persistence is
// disabled and in tests.
type MemoryStore struct {
	mu  sync.Mutex
	rec Record
	// Saves counts successful Save calls.
	Saves int
}

// Load returns the held record.
func (m *MemoryStore) Load() (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rec, nil
}

// Save replaces the held record.
func (m *MemoryStore) Save(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = rec
	m.Saves++
	return nil
}
