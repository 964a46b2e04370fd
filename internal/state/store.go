package state

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/storefront/internal/logger"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Listener observes committed transitions. Listeners run synchronously on the
// dispatching goroutine, in registration order, and must not call Dispatch.
type Listener func(prev, next State, action Action)

// Subscription represents a registered listener.
type Subscription interface {
	Unsubscribe()
}

// Authenticator is the gateway collaborator used by Login.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (UserProfile, string, error)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger logs every committed transition at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Store holds the application state and serializes every transition.
type Store struct {
	dispatchMu sync.Mutex

	mu     sync.RWMutex
	state  State
	subs   []subscriptionEntry
	nextID int

	log *logger.Logger
}

type subscriptionEntry struct {
	id       int
	listener Listener
}

// NewStore creates a store seeded with initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{state: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action, then notifies listeners. The new state is
// observable through State before any listener runs.
func (s *Store) Dispatch(action Action) State {
	if action == nil {
		return s.State()
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next
	listeners := make([]Listener, 0, len(s.subs))
	for _, entry := range s.subs {
		listeners = append(listeners, entry.listener)
	}
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"action":        action.Type(),
		"authenticated": next.Session.IsAuthenticated,
		"skipped":       next.Session.IsSkipped,
		"dark_mode":     next.Theme.IsDarkMode,
	}).Debug("state committed")

	for _, listener := range listeners {
		listener(prev, next, action)
	}

	return next
}

// Subscribe registers a listener for every subsequent transition.
func (s *Store) Subscribe(listener Listener) Subscription {
	if listener == nil {
		return noopSubscription{}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriptionEntry{id: id, listener: listener})
	s.mu.Unlock()

	return &subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.subs {
			if entry.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				break
			}
		}
	}}
}

// Login runs the login flow: pending, the gateway call, then fulfilled or
// rejected. A success without a token is treated as a rejection. Concurrent
// calls are not serialized against each other; each settles the slice when
// its own call returns, so the last one to resolve wins.
func (s *Store) Login(ctx context.Context, auth Authenticator, creds Credentials) error {
	s.Dispatch(LoginPending{})

	user, token, err := auth.Authenticate(ctx, creds)
	if err == nil && token == "" {
		err = apperrors.NewValidationError("token", apperrors.InvalidLoginMessage, nil)
	}
	if err != nil {
		s.log.With("username", creds.Username).Error(err, "login rejected")
		s.Dispatch(LoginRejected{Reason: apperrors.Reason(err)})
		return err
	}

	s.Dispatch(LoginFulfilled{User: user, Token: token})
	return nil
}

// Skip enters the app as a guest.
func (s *Store) Skip() State { return s.Dispatch(SkipLogin{}) }

// Logout signs out.
func (s *Store) Logout() State { return s.Dispatch(Logout{}) }

// ClearError drops the last login failure.
func (s *Store) ClearError() State { return s.Dispatch(ClearError{}) }

// ToggleTheme flips dark mode.
func (s *Store) ToggleTheme() State { return s.Dispatch(ToggleTheme{}) }

// SetDarkMode sets dark mode.
func (s *Store) SetDarkMode(dark bool) State { return s.Dispatch(SetDarkMode{Value: dark}) }

// Notify shows a toast.
func (s *Store) Notify(message string, severity Severity) State {
	return s.Dispatch(ShowNotification{Message: message, Severity: severity})
}

// HideNotification dismisses the toast.
func (s *Store) HideNotification() State { return s.Dispatch(HideNotification{}) }

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
