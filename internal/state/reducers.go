package state

import (
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// DefaultLoginFailure is stored when a login is rejected without a reason.
const DefaultLoginFailure = "Login failed"

// Reduce applies an action to every slice.
func Reduce(s State, action Action) State {
	return State{
		Session:      ReduceSession(s.Session, action),
		Theme:        ReduceTheme(s.Theme, action),
		Notification: ReduceNotification(s.Notification, action),
	}
}

// ReduceSession is the session slice reducer.
func ReduceSession(s SessionState, action Action) SessionState {
	switch a := action.(type) {
	case LoginPending:
		s.Loading = true
		s.Error = ""

	case LoginFulfilled:
		user := a.User
		s.Loading = false
		s.IsAuthenticated = true
		s.IsSkipped = false
		s.User = &user
		s.Token = a.Token
		s.Error = ""

	case LoginRejected:
		// A failed attempt does not clear a prior user or token.
		s.Loading = false
		s.IsAuthenticated = false
		s.Error = a.Reason
		if s.Error == "" {
			s.Error = DefaultLoginFailure
		}

	case SkipLogin:
		s.IsSkipped = true
		s.IsAuthenticated = false
		s.User = nil
		s.Token = ""

	case Logout:
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.IsSkipped = false
		s.Error = ""

	case ClearError:
		s.Error = ""

	case Rehydrate:
		s = a.Session
		s.Loading = false
		s.Error = ""
		if s.User != nil {
			user := *s.User
			s.User = &user
		}
	}

	return s
}

// ReduceTheme is the theme slice reducer.
func ReduceTheme(s ThemeState, action Action) ThemeState {
	switch a := action.(type) {
	case ToggleTheme:
		s.IsDarkMode = !s.IsDarkMode
	case SetDarkMode:
		s.IsDarkMode = a.Value
	case Rehydrate:
		s.IsDarkMode = a.Theme.IsDarkMode
	default:
		return s
	}

	s.Palette = theme.For(s.IsDarkMode)
	return s
}

// ReduceNotification is the notification slice reducer.
func ReduceNotification(s NotificationState, action Action) NotificationState {
	switch a := action.(type) {
	case ShowNotification:
		s.Visible = true
		s.Message = a.Message
		s.Severity = a.Severity
		if !s.Severity.Valid() {
			s.Severity = SeveritySuccess
		}
	case HideNotification:
		s.Visible = false
		s.Message = ""
	}

	return s
}
