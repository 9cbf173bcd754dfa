// Package session is the local cache of the last successful login. It holds
// plain identifiers and display fields only; nothing here is validated or
// expired, and every protected flow re-authorizes against the backend.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ErrNotAuthenticated signals that the state lacks the identifier for the
// requested role; callers route to the matching login flow instead of making
// API calls.
var ErrNotAuthenticated = errors.New("session: not authenticated for role")

// State mirrors the persisted keys of the browser client one-for-one.
type State struct {
	UserType        Role   `json:"user_type,omitempty"`
	UserID          int    `json:"user_id,omitempty"`
	UserName        string `json:"user_name,omitempty"`
	DoctorID        int    `json:"doctor_id,omitempty"`
	DoctorName      string `json:"doctor_name,omitempty"`
	DoctorSpecialty string `json:"doctor_specialty,omitempty"`
	AdminToken      string `json:"admin_token,omitempty"`
	AdminUsername   string `json:"admin_username,omitempty"`
}

// ActorID returns the acting identifier for a role, or ErrNotAuthenticated
// when it is absent. Admin sessions are keyed by token rather than id, so a
// present token yields a zero id and a nil error.
func (s *State) ActorID(role Role) (int, error) {
	if s == nil {
		return 0, ErrNotAuthenticated
	}
	switch role {
	case RolePatient:
		if s.UserID > 0 {
			return s.UserID, nil
		}
	case RoleDoctor:
		if s.DoctorID > 0 {
			return s.DoctorID, nil
		}
	case RoleAdmin:
		if s.AdminToken != "" {
			return 0, nil
		}
	}
	return 0, ErrNotAuthenticated
}

// Store is the explicit session dependency injected into anything that needs
// to know who is acting. Implementations must make Clear idempotent and must
// never expose a partially written state to readers.
type Store interface {
	Load() (*State, error)
	Save(*State) error
	Clear() error
}

// FileStore persists the session as a single JSON file, replaced atomically
// on save so a concurrent reader sees either the old state or the new one.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persisted state, or an empty state when none exists.
func (fs *FileStore) Load() (*State, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (fs *FileStore) Save(state *State) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, fs.path)
}

// Clear removes the session file. Clearing an already-absent session is not
// an error.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore keeps the state in memory; tests inject it in place of the
// file-backed store.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Load() (*State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.state == nil {
		return &State{}, nil
	}
	copied := *ms.state
	return &copied, nil
}

func (ms *MemoryStore) Save(state *State) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	copied := *state
	ms.state = &copied
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.state = nil
	return nil
}
