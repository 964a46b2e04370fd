package navigation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// ErrUnreachable is returned when a screen is not part of the current graph.
var ErrUnreachable = errors.New("screen is not reachable from the current graph")

// Route is one entry on the navigation stack.
type Route struct {
	Screen    Screen
	ProductID int
}

// Navigator follows the store and keeps a route stack for the current graph.
// When the gate flips it discards the stack and starts over at the new
// graph's root.
type Navigator struct {
	mu       sync.RWMutex
	graph    Graph
	stack    []Route
	onChange func(Graph)

	sub state.Subscription
}

// NewNavigator evaluates the gate against the store's current state and
// subscribes for re-evaluation on every transition.
func NewNavigator(store *state.Store) *Navigator {
	n := &Navigator{}
	n.reset(GraphFor(store.State().Session))
	n.sub = store.Subscribe(func(_, next state.State, _ state.Action) {
		n.evaluate(next.Session)
	})
	return n
}

// OnGraphChange registers a callback invoked after the graph flips.
func (n *Navigator) OnGraphChange(fn func(Graph)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Close stops following the store.
func (n *Navigator) Close() {
	if n.sub != nil {
		n.sub.Unsubscribe()
	}
}

// Graph returns the active graph.
func (n *Navigator) Graph() Graph {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.graph
}

// Current returns the top of the route stack.
func (n *Navigator) Current() Route {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.stack)
}

// Tab returns the tab underneath any pushed detail views.
func (n *Navigator) Tab() Screen {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack[0].Screen
}

// SelectTab switches tabs, dropping any detail views.
func (n *Navigator) SelectTab(screen Screen) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !screen.IsTab() || !Reachable(n.graph, screen) {
		return fmt.Errorf("select %s: %w", screen, ErrUnreachable)
	}
	n.stack = []Route{{Screen: screen}}
	return nil
}

// OpenDetail pushes the detail view for a product.
func (n *Navigator) OpenDetail(productID int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !Reachable(n.graph, ScreenDetail) {
		return fmt.Errorf("open %s: %w", ScreenDetail, ErrUnreachable)
	}
	n.stack = append(n.stack, Route{Screen: ScreenDetail, ProductID: productID})
	return nil
}

// Back pops one route. It reports false when already at the root.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

func (n *Navigator) evaluate(session state.SessionState) {
	next := GraphFor(session)

	n.mu.Lock()
	if next == n.graph {
		n.mu.Unlock()
		return
	}
	n.resetLocked(next)
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}

func (n *Navigator) reset(g Graph) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetLocked(g)
}

func (n *Navigator) resetLocked(g Graph) {
	n.graph = g
	n.stack = []Route{{Screen: Root(g)}}
}
