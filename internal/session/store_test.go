package session_test

import (
	"errors"
	"path/filepath"
	"testing"

	"healthcare-assistant-client/internal/session"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	state := &session.State{
		UserType: session.RolePatient,
		UserID:   7,
		UserName: "Ana",
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserID != 7 || loaded.UserName != "Ana" || loaded.UserType != session.RolePatient {
		t.Errorf("unexpected state %+v", loaded)
	}
}

func TestFileStoreLoadWithoutFile(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *state != (session.State{}) {
		t.Errorf("expected empty state, got %+v", state)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(&session.State{UserID: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Double-clear must not error and must leave nothing behind each time.
	for i := 0; i < 2; i++ {
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear #%d: %v", i+1, err)
		}
		state, err := store.Load()
		if err != nil {
			t.Fatalf("Load after clear #%d: %v", i+1, err)
		}
		if *state != (session.State{}) {
			t.Errorf("clear #%d left state %+v", i+1, state)
		}
	}
}

func TestSaveReplacesWholeState(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	if err := store.Save(&session.State{UserType: session.RolePatient, UserID: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(&session.State{UserType: session.RoleDoctor, DoctorID: 3, DoctorName: "Dr. Chen"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserID != 0 {
		t.Error("stale patient id survived a doctor login")
	}
	if loaded.DoctorID != 3 {
		t.Errorf("expected doctor id 3, got %d", loaded.DoctorID)
	}
}

func TestActorIDGating(t *testing.T) {
	cases := []struct {
		name    string
		state   session.State
		role    session.Role
		wantID  int
		wantErr bool
	}{
		{"patient present", session.State{UserID: 7}, session.RolePatient, 7, false},
		{"patient absent", session.State{}, session.RolePatient, 0, true},
		{"doctor present", session.State{DoctorID: 3}, session.RoleDoctor, 3, false},
		{"doctor absent for patient session", session.State{UserID: 7}, session.RoleDoctor, 0, true},
		{"admin keyed by token", session.State{AdminToken: "tok"}, session.RoleAdmin, 0, false},
		{"admin absent", session.State{}, session.RoleAdmin, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := tc.state.ActorID(tc.role)
			if tc.wantErr {
				if !errors.Is(err, session.ErrNotAuthenticated) {
					t.Fatalf("expected ErrNotAuthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ActorID: %v", err)
			}
			if id != tc.wantID {
				t.Errorf("expected id %d, got %d", tc.wantID, id)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *state != (session.State{}) {
		t.Errorf("expected empty initial state, got %+v", state)
	}

	if err := store.Save(&session.State{UserID: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserID != 7 {
		t.Errorf("expected user id 7, got %d", loaded.UserID)
	}

	// Mutating the loaded copy must not leak back into the store.
	loaded.UserID = 99
	again, _ := store.Load()
	if again.UserID != 7 {
		t.Error("store state was mutated through a loaded copy")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
