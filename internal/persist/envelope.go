// Package persist keeps the session and theme slices on durable storage and
// restores them at startup.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/storefront/internal/state"
)

const (
	// RootKey is the storage key of the snapshot.
	RootKey = "root"
	// Version is the only envelope schema this build understands.
	Version = 1
)

var (
	errVersionMismatch = errors.New("snapshot version mismatch")
	errKeyMismatch     = errors.New("snapshot key mismatch")
	errInconsistent    = errors.New("snapshot has inconsistent session flags")
)

// Envelope is the on-disk snapshot format.
type Envelope struct {
	Key     string   `json:"key"`
	Version int      `json:"version"`
	State   Snapshot `json:"state"`
}

// Snapshot is the whitelist of slices written to storage. The
// notification slice is never included.
type Snapshot struct {
	Session PersistedSession `json:"session"`
	Theme   PersistedTheme   `json:"theme"`
}

// PersistedSession omits the transient loading and error fields.
type PersistedSession struct {
	User            *state.UserProfile `json:"user"`
	Token           string             `json:"token,omitempty"`
	IsAuthenticated bool               `json:"isAuthenticated"`
	IsSkipped       bool               `json:"isSkipped"`
}

// PersistedTheme stores only the flag; the palette is derived on load.
type PersistedTheme struct {
	IsDarkMode bool `json:"isDarkMode"`
}

// Project extracts the persisted slices from the full state.
func Project(s state.State) Snapshot {
	var user *state.UserProfile
	if s.Session.User != nil {
		u := *s.Session.User
		user = &u
	}

	return Snapshot{
		Session: PersistedSession{
			User:            user,
			Token:           s.Session.Token,
			IsAuthenticated: s.Session.IsAuthenticated,
			IsSkipped:       s.Session.IsSkipped,
		},
		Theme: PersistedTheme{IsDarkMode: s.Theme.IsDarkMode},
	}
}

// Equal compares two projections by value.
func (p Snapshot) Equal(other Snapshot) bool {
	if p.Session.Token != other.Session.Token ||
		p.Session.IsAuthenticated != other.Session.IsAuthenticated ||
		p.Session.IsSkipped != other.Session.IsSkipped ||
		p.Theme != other.Theme {
		return false
	}

	switch {
	case p.Session.User == nil && other.Session.User == nil:
		return true
	case p.Session.User == nil || other.Session.User == nil:
		return false
	default:
		return *p.Session.User == *other.Session.User
	}
}

// Slices converts the snapshot back into slice values.
func (p Snapshot) Slices() (state.SessionState, state.ThemeState) {
	session := state.SessionState{
		User:            p.Session.User,
		Token:           p.Session.Token,
		IsAuthenticated: p.Session.IsAuthenticated,
		IsSkipped:       p.Session.IsSkipped,
	}
	themeState := state.ReduceTheme(state.InitialTheme(), state.SetDarkMode{Value: p.Theme.IsDarkMode})
	return session, themeState
}

// Encode serializes the envelope for the given state.
func Encode(s state.State) ([]byte, error) {
	env := Envelope{Key: RootKey, Version: Version, State: Project(s)}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses and checks an envelope.
func Decode(data []byte) (Snapshot, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if env.Key != RootKey {
		return Snapshot{}, fmt.Errorf("%w: %q", errKeyMismatch, env.Key)
	}
	if env.Version != Version {
		return Snapshot{}, fmt.Errorf("%w: got %d, want %d", errVersionMismatch, env.Version, Version)
	}

	session := env.State.Session
	if session.IsAuthenticated && session.IsSkipped {
		return Snapshot{}, fmt.Errorf("%w: authenticated and skipped", errInconsistent)
	}
	if (session.User == nil) != (session.Token == "") {
		return Snapshot{}, fmt.Errorf("%w: user and token must be set together", errInconsistent)
	}

	return env.State, nil
}
