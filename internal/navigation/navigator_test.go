package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/state"
)

type okAuthenticator struct{}

func (okAuthenticator) Authenticate(context.Context, state.Credentials) (state.UserProfile, string, error) {
	return state.UserProfile{ID: 1, Username: "emilys", FirstName: "Emily"}, "jwt", nil
}

func TestCanAccessApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session state.SessionState
		want    bool
	}{
		{name: "signed out", session: state.SessionState{}, want: false},
		{name: "authenticated", session: state.SessionState{IsAuthenticated: true}, want: true},
		{name: "skipped", session: state.SessionState{IsSkipped: true}, want: true},
		{name: "loading only", session: state.SessionState{Loading: true}, want: false},
		{name: "failed login", session: state.SessionState{Error: "Invalid credentials"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessApp(tt.session))
		})
	}
}

func TestReachable(t *testing.T) {
	t.Parallel()

	assert.True(t, Reachable(Unauthenticated, ScreenAuth))
	for _, screen := range []Screen{ScreenHome, ScreenListing, ScreenProfile, ScreenDetail} {
		assert.False(t, Reachable(Unauthenticated, screen), screen.String())
		assert.True(t, Reachable(Authenticated, screen), screen.String())
	}
	assert.False(t, Reachable(Authenticated, ScreenAuth))
}

func TestLogoutAlwaysClosesGate(t *testing.T) {
	t.Parallel()

	starts := []state.SessionState{
		{},
		{IsSkipped: true},
		{IsAuthenticated: true, Token: "jwt", User: &state.UserProfile{ID: 1}},
		{Loading: true, Error: "x"},
	}

	for _, start := range starts {
		next := state.ReduceSession(start, state.Logout{})
		assert.False(t, CanAccessApp(next))
	}
}

func TestNavigatorStartsFromStoreState(t *testing.T) {
	t.Parallel()

	fresh := NewNavigator(state.NewStore(state.Initial()))
	defer fresh.Close()
	assert.Equal(t, Unauthenticated, fresh.Graph())
	assert.Equal(t, ScreenAuth, fresh.Current().Screen)

	skipped := state.Initial()
	skipped.Session.IsSkipped = true
	resumed := NewNavigator(state.NewStore(skipped))
	defer resumed.Close()
	assert.Equal(t, Authenticated, resumed.Graph())
	assert.Equal(t, ScreenHome, resumed.Current().Screen)
}

func TestNavigatorFollowsTransitions(t *testing.T) {
	t.Parallel()

	store := state.NewStore(state.Initial())
	nav := NewNavigator(store)
	defer nav.Close()

	var flips []Graph
	nav.OnGraphChange(func(g Graph) { flips = append(flips, g) })

	require.NoError(t, store.Login(context.Background(), okAuthenticator{}, state.Credentials{Username: "emilys", Password: "emilyspass"}))
	assert.Equal(t, Authenticated, nav.Graph())

	require.NoError(t, nav.SelectTab(ScreenListing))
	require.NoError(t, nav.OpenDetail(7))
	assert.Equal(t, Route{Screen: ScreenDetail, ProductID: 7}, nav.Current())

	// Theme changes never move the gate.
	store.ToggleTheme()
	assert.Equal(t, Route{Screen: ScreenDetail, ProductID: 7}, nav.Current())

	store.Logout()
	assert.Equal(t, Unauthenticated, nav.Graph())
	assert.Equal(t, ScreenAuth, nav.Current().Screen)
	assert.Equal(t, 1, nav.Depth())

	store.Skip()
	assert.Equal(t, Authenticated, nav.Graph())
	assert.Equal(t, ScreenHome, nav.Current().Screen)

	assert.Equal(t, []Graph{Authenticated, Unauthenticated, Authenticated}, flips)
}

func TestNavigatorFailedLoginStaysOnAuth(t *testing.T) {
	t.Parallel()

	store := state.NewStore(state.Initial())
	nav := NewNavigator(store)
	defer nav.Close()

	store.Dispatch(state.LoginPending{})
	store.Dispatch(state.LoginRejected{Reason: "Invalid credentials"})

	assert.Equal(t, Unauthenticated, nav.Graph())
	assert.ErrorIs(t, nav.SelectTab(ScreenHome), ErrUnreachable)
	assert.ErrorIs(t, nav.OpenDetail(1), ErrUnreachable)
}

func TestNavigatorBackAndTabs(t *testing.T) {
	t.Parallel()

	skipped := state.Initial()
	skipped.Session.IsSkipped = true
	nav := NewNavigator(state.NewStore(skipped))
	defer nav.Close()

	assert.False(t, nav.Back())

	require.NoError(t, nav.OpenDetail(1))
	require.NoError(t, nav.OpenDetail(2))
	assert.Equal(t, 3, nav.Depth())
	assert.Equal(t, ScreenHome, nav.Tab())

	assert.True(t, nav.Back())
	assert.Equal(t, 1, nav.Current().ProductID)

	require.NoError(t, nav.SelectTab(ScreenProfile))
	assert.Equal(t, 1, nav.Depth())
	assert.ErrorIs(t, nav.SelectTab(ScreenDetail), ErrUnreachable)
	assert.ErrorIs(t, nav.SelectTab(ScreenAuth), ErrUnreachable)
}
