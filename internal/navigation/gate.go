// Package navigation selects which screen graph is reachable from the
// session state and tracks the route stack inside that graph.
package navigation

import (
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// Graph is one of the two screen graphs.
type Graph int

const (
	Unauthenticated Graph = iota
	Authenticated
)

func (g Graph) String() string {
	if g == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Screen identifies a destination.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenHome
	ScreenListing
	ScreenProfile
	ScreenDetail
)

// Tabs lists the tabbed screens of the authenticated graph, in display order.
var Tabs = []Screen{ScreenHome, ScreenListing, ScreenProfile}

func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "Auth"
	case ScreenHome:
		return "Home"
	case ScreenListing:
		return "Products"
	case ScreenProfile:
		return "Profile"
	case ScreenDetail:
		return "Product Details"
	default:
		return "Unknown"
	}
}

// IsTab reports whether s is one of the tabbed screens.
func (s Screen) IsTab() bool {
	for _, tab := range Tabs {
		if tab == s {
			return true
		}
	}
	return false
}

// CanAccessApp is the gate predicate.
func CanAccessApp(s state.SessionState) bool {
	return s.IsAuthenticated || s.IsSkipped
}

// GraphFor maps a session onto its screen graph.
func GraphFor(s state.SessionState) Graph {
	if CanAccessApp(s) {
		return Authenticated
	}
	return Unauthenticated
}

// Reachable reports whether screen belongs to graph.
func Reachable(g Graph, screen Screen) bool {
	switch g {
	case Unauthenticated:
		return screen == ScreenAuth
	case Authenticated:
		return screen == ScreenDetail || screen.IsTab()
	default:
		return false
	}
}

// Root is the screen a graph opens on.
func Root(g Graph) Screen {
	if g == Authenticated {
		return ScreenHome
	}
	return ScreenAuth
}
