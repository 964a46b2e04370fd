package tui

import (
	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/catalog"
)

// Store messages

// stateChangedMsg wakes the program after a transition committed outside
// Update, such as one dispatched by a command.
type stateChangedMsg struct{}

// Auth messages

// LoginDoneMsg reports that a login request settled. The outcome itself is
// in the store.
type LoginDoneMsg struct {
	Err error
}

// errorExpiredMsg clears the login error if no newer error replaced it.
type errorExpiredMsg struct {
	seq uint64
}

// Toast messages

// toastExpiredMsg hides the toast if no newer toast replaced it.
type toastExpiredMsg struct {
	seq uint64
}

// Catalogue messages

// HomeLoadedMsg carries the home screen payload.
type HomeLoadedMsg struct {
	Overview catalog.Overview
	Err      error
}

// HomeRefreshedMsg carries reloaded featured products.
type HomeRefreshedMsg struct {
	Products []api.Product
	Err      error
}

// ListingLoadedMsg carries listing or search results. Seq identifies the
// query that produced them; stale results are dropped.
type ListingLoadedMsg struct {
	Seq      uint64
	Query    string
	Products []api.Product
	Err      error
}

// searchDebounceMsg fires once typing has paused.
type searchDebounceMsg struct {
	seq   uint64
	query string
}

// DetailLoadedMsg carries a single product.
type DetailLoadedMsg struct {
	ID      int
	Product *api.Product
	Err     error
}
