package state

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/logger"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

type stubAuthenticator struct {
	user  UserProfile
	token string
	err   error
}

func (s stubAuthenticator) Authenticate(context.Context, Credentials) (UserProfile, string, error) {
	return s.user, s.token, s.err
}

// gatedAuthenticator blocks each call until the test releases it, so the
// completion order of overlapping logins can be chosen.
type gatedAuthenticator struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	started chan string
}

func newGatedAuthenticator(usernames ...string) *gatedAuthenticator {
	g := &gatedAuthenticator{gates: make(map[string]chan struct{}), started: make(chan string, len(usernames))}
	for _, name := range usernames {
		g.gates[name] = make(chan struct{})
	}
	return g
}

func (g *gatedAuthenticator) Authenticate(ctx context.Context, creds Credentials) (UserProfile, string, error) {
	g.mu.Lock()
	gate := g.gates[creds.Username]
	g.mu.Unlock()

	g.started <- creds.Username
	<-gate
	return UserProfile{Username: creds.Username}, "token-" + creds.Username, nil
}

func (g *gatedAuthenticator) release(username string) {
	close(g.gates[username])
}

func TestStoreLoginSuccess(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	var seen []string
	store.Subscribe(func(_, _ State, action Action) {
		seen = append(seen, action.Type())
	})

	err := store.Login(context.Background(), stubAuthenticator{user: emily, token: "jwt"}, Credentials{Username: "emilys", Password: "emilyspass"})
	require.NoError(t, err)

	s := store.State().Session
	assert.True(t, s.IsAuthenticated)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.Equal(t, "jwt", s.Token)
	assert.Equal(t, []string{ActionLoginPending, ActionLoginFulfilled}, seen)
}

func TestStoreLoginFailureStoresReason(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	auth := stubAuthenticator{err: apperrors.NewAPIError(http.StatusBadRequest, "Invalid credentials")}

	err := store.Login(context.Background(), auth, Credentials{Username: "emilys", Password: "wrong"})
	require.Error(t, err)

	s := store.State().Session
	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.Loading)
	assert.Equal(t, "Invalid credentials", s.Error)
}

func TestStoreLoginNetworkFailure(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	auth := stubAuthenticator{err: apperrors.NewNetworkError("login", errors.New("connection refused"))}

	require.Error(t, store.Login(context.Background(), auth, Credentials{Username: "a", Password: "b"}))
	assert.Equal(t, apperrors.NetworkMessage, store.State().Session.Error)
}

func TestStoreLoginWithoutTokenIsRejected(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	auth := stubAuthenticator{user: UserProfile{ID: 1, Username: "emilys"}}

	err := store.Login(context.Background(), auth, Credentials{Username: "emilys", Password: "emilyspass"})
	require.Error(t, err)

	s := store.State().Session
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.Equal(t, apperrors.InvalidLoginMessage, s.Error)
}

func TestStoreOverlappingLoginsLastResolvedWins(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	auth := newGatedAuthenticator("first", "second")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = store.Login(context.Background(), auth, Credentials{Username: "first", Password: "x"})
	}()
	<-auth.started
	go func() {
		defer wg.Done()
		_ = store.Login(context.Background(), auth, Credentials{Username: "second", Password: "x"})
	}()
	<-auth.started

	require.True(t, store.State().Session.Loading)

	// The later request resolves first; the earlier one resolves last and wins.
	auth.release("second")
	require.Eventually(t, func() bool {
		s := store.State().Session
		return s.User != nil && s.User.Username == "second"
	}, time.Second, 5*time.Millisecond)

	auth.release("first")
	wg.Wait()

	s := store.State().Session
	require.NotNil(t, s.User)
	assert.Equal(t, "first", s.User.Username)
	assert.Equal(t, "token-first", s.Token)
	assert.True(t, s.IsAuthenticated)
	assert.False(t, s.Loading)
}

func TestStoreSubscribersSeeCommittedState(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())

	var observed []bool
	store.Subscribe(func(prev, next State, _ Action) {
		assert.Equal(t, next, store.State())
		observed = append(observed, next.Theme.IsDarkMode)
	})

	store.ToggleTheme()
	store.ToggleTheme()

	assert.Equal(t, []bool{true, false}, observed)
}

func TestStoreUnsubscribe(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())

	calls := 0
	sub := store.Subscribe(func(State, State, Action) { calls++ })
	store.Skip()
	sub.Unsubscribe()
	sub.Unsubscribe()
	store.Logout()

	assert.Equal(t, 1, calls)
}

func TestStoreSubscribersRunInOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())

	var order []int
	store.Subscribe(func(State, State, Action) { order = append(order, 1) })
	store.Subscribe(func(State, State, Action) { order = append(order, 2) })
	store.Notify("hello", SeverityInfo)

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, SeverityInfo, store.State().Notification.Severity)
}

func TestStoreLogsTransitions(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	store := NewStore(Initial(), WithLogger(log))
	store.Skip()

	assert.Contains(t, buf.String(), ActionSkipLogin)
	assert.Contains(t, buf.String(), "state committed")
}

func TestStoreDispatchIgnoresNil(t *testing.T) {
	t.Parallel()

	store := NewStore(Initial())
	assert.Equal(t, Initial(), store.Dispatch(nil))
}
