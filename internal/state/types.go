// Package state is the storefront's single state container: the session,
// theme and notification slices, their pure reducers and the Store that
// serializes transitions and fans them out to subscribers.
package state

import (
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// UserProfile is the signed-in user as returned by the gateway. It is
// replaced wholesale on every successful login.
type UserProfile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// FullName joins first and last name.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SessionState is the authentication slice. Token and Error use the empty
// string for "absent".
type SessionState struct {
	User            *UserProfile `json:"user"`
	Token           string       `json:"token,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsSkipped       bool         `json:"isSkipped"`
	Loading         bool         `json:"loading"`
	Error           string       `json:"error,omitempty"`
}

// ThemeState is the appearance slice. Palette is always derived from
// IsDarkMode.
type ThemeState struct {
	IsDarkMode bool          `json:"isDarkMode"`
	Palette    theme.Palette `json:"-"`
}

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// NotificationState backs the toast. It is never persisted.
type NotificationState struct {
	Visible  bool
	Message  string
	Severity Severity
}

// State is the whole application state.
type State struct {
	Session      SessionState
	Theme        ThemeState
	Notification NotificationState
}

// Credentials are the login inputs. Emptiness is checked by callers before
// dispatching, never by the session slice.
type Credentials struct {
	Username string
	Password string
}

// InitialSession is the signed-out session.
func InitialSession() SessionState {
	return SessionState{}
}

// InitialTheme is light mode.
func InitialTheme() ThemeState {
	return ThemeState{IsDarkMode: false, Palette: theme.For(false)}
}

// InitialNotification is a hidden success toast.
func InitialNotification() NotificationState {
	return NotificationState{Severity: SeveritySuccess}
}

// Initial is the state of a fresh install.
func Initial() State {
	return State{
		Session:      InitialSession(),
		Theme:        InitialTheme(),
		Notification: InitialNotification(),
	}
}
