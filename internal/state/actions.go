package state

// Action is a transition request handled by the reducers.
type Action interface {
	Type() string
}

const (
	ActionLoginPending     = "auth/login/pending"
	ActionLoginFulfilled   = "auth/login/fulfilled"
	ActionLoginRejected    = "auth/login/rejected"
	ActionSkipLogin        = "auth/skipLogin"
	ActionLogout           = "auth/logout"
	ActionClearError       = "auth/clearError"
	ActionToggleTheme      = "theme/toggleTheme"
	ActionSetDarkMode      = "theme/setDarkMode"
	ActionShowNotification = "snackbar/show"
	ActionHideNotification = "snackbar/hide"
	ActionRehydrate        = "persist/rehydrate"
)

// LoginPending marks a login request as in flight.
type LoginPending struct{}

// LoginFulfilled settles a login with the gateway's profile and credential.
type LoginFulfilled struct {
	User  UserProfile
	Token string
}

// LoginRejected settles a login with a human-readable failure reason.
type LoginRejected struct {
	Reason string
}

// SkipLogin enters the app as a guest.
type SkipLogin struct{}

// Logout returns to the signed-out state.
type Logout struct{}

// ClearError drops the last login failure.
type ClearError struct{}

// ToggleTheme flips dark mode.
type ToggleTheme struct{}

// SetDarkMode sets dark mode to an absolute value.
type SetDarkMode struct {
	Value bool
}

// ShowNotification displays a toast, replacing any visible one.
type ShowNotification struct {
	Message  string
	Severity Severity
}

// HideNotification dismisses the toast.
type HideNotification struct{}

// Rehydrate replaces the persisted slices with a loaded snapshot.
type Rehydrate struct {
	Session SessionState
	Theme   ThemeState
}

func (LoginPending) Type() string     { return ActionLoginPending }
func (LoginFulfilled) Type() string   { return ActionLoginFulfilled }
func (LoginRejected) Type() string    { return ActionLoginRejected }
func (SkipLogin) Type() string        { return ActionSkipLogin }
func (Logout) Type() string           { return ActionLogout }
func (ClearError) Type() string       { return ActionClearError }
func (ToggleTheme) Type() string      { return ActionToggleTheme }
func (SetDarkMode) Type() string      { return ActionSetDarkMode }
func (ShowNotification) Type() string { return ActionShowNotification }
func (HideNotification) Type() string { return ActionHideNotification }
func (Rehydrate) Type() string        { return ActionRehydrate }
