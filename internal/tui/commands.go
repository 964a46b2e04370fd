package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/catalog"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// loginCmd runs the login flow against the gateway.
func loginCmd(ctx context.Context, store *state.Store, auth state.Authenticator, creds state.Credentials) tea.Cmd {
	return func() tea.Msg {
		return LoginDoneMsg{Err: store.Login(ctx, auth, creds)}
	}
}

// waitForStateCmd blocks until the store signals a change.
func waitForStateCmd(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func toastTimerCmd(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func errorTimerCmd(d time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return errorExpiredMsg{seq: seq}
	})
}

func searchDebounceCmd(d time.Duration, seq uint64, query string) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return searchDebounceMsg{seq: seq, query: query} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq, query: query}
	})
}

// loadHomeCmd loads featured products and categories.
func loadHomeCmd(ctx context.Context, b *catalog.Browser) tea.Cmd {
	return func() tea.Msg {
		overview, err := b.Overview(ctx)
		return HomeLoadedMsg{Overview: overview, Err: err}
	}
}

// refreshHomeCmd reloads featured products.
func refreshHomeCmd(ctx context.Context, b *catalog.Browser) tea.Cmd {
	return func() tea.Msg {
		products, err := b.Refresh(ctx)
		return HomeRefreshedMsg{Products: products, Err: err}
	}
}

// searchCmd loads the listing, or search results for a non-blank query.
func searchCmd(ctx context.Context, b *catalog.Browser, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		products, err := b.Search(ctx, query)
		return ListingLoadedMsg{Seq: seq, Query: query, Products: products, Err: err}
	}
}

// detailCmd loads one product.
func detailCmd(ctx context.Context, b *catalog.Browser, id int) tea.Cmd {
	return func() tea.Msg {
		product, err := b.Detail(ctx, id)
		return DetailLoadedMsg{ID: id, Product: product, Err: err}
	}
}
