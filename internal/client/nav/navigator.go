package nav

import (
	"context"
	"sync"
	"time"

	"github.com/anunciabr/anuncia/internal/logging"
)

// Decision is the route guard's verdict for a requested navigation.
type Decision int

const (
	// DecisionAllow renders the requested view.
	DecisionAllow Decision = iota
	// DecisionDefer postpones the verdict until session hydration
	// completes. Never treated as a denial.
	DecisionDefer
	// DecisionRedirect sends the user to Target instead of the requested
	// view.
	DecisionRedirect
)

// Outcome is the full guard verdict. From is the originally requested
// route, preserved on redirects.
type Outcome struct {
	Decision Decision
	Target   Route
	From     Route
}

// Decider produces an Outcome for a requested route. Implemented by the
// route guard.
type Decider interface {
	Decide(to Route) Outcome
}

// defaultForceLoginDebounce collapses bursts of concurrent authentication
// failures into a single redirect.
const defaultForceLoginDebounce = 100 * time.Millisecond

// Navigator tracks the current view and applies guard verdicts. It is safe
// for concurrent use: background refreshes and parallel request failures
// may navigate while the REPL is active.
type Navigator struct {
	decider  Decider
	log      logging.Logger
	onChange func(Route)
	debounce time.Duration

	mu         sync.Mutex
	current    Route
	pending    Route
	hasPending bool
	lastFrom   Route
	lastForced time.Time
}

// New builds a Navigator starting at the home view.
func New(decider Decider, log logging.Logger) *Navigator {
	return &Navigator{
		decider:  decider,
		log:      log,
		debounce: defaultForceLoginDebounce,
		current:  RouteHome,
	}
}

// SetOnChange registers the view-rendering callback, invoked after every
// effective route change.
func (n *Navigator) SetOnChange(fn func(Route)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Current returns the active route.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// LastFrom returns the origin recorded by the most recent redirect or
// forced login, e.g. the page the user tried to reach before logging in.
func (n *Navigator) LastFrom() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastFrom
}

// Navigate asks the guard about the requested route and applies the
// verdict. Deferred requests are replayed by Resume once hydration ends.
func (n *Navigator) Navigate(to Route) Outcome {
	out := n.decider.Decide(to)

	n.mu.Lock()
	var notify func(Route)
	var target Route

	switch out.Decision {
	case DecisionAllow:
		n.current = to
		n.hasPending = false
		notify, target = n.onChange, to

	case DecisionDefer:
		n.pending = to
		n.hasPending = true

	case DecisionRedirect:
		n.lastFrom = out.From
		n.current = out.Target
		n.hasPending = false
		notify, target = n.onChange, out.Target
	}
	n.mu.Unlock()

	if notify != nil {
		notify(target)
	}
	return out
}

// Resume replays a navigation that was deferred while the session was
// hydrating. No-op when nothing is pending.
func (n *Navigator) Resume(ctx context.Context) {
	n.mu.Lock()
	if !n.hasPending {
		n.mu.Unlock()
		return
	}
	to := n.pending
	n.hasPending = false
	n.mu.Unlock()

	n.log.Debug(ctx, "resuming deferred navigation", "route", string(to))
	n.Navigate(to)
}

// ForceLogin sends the user to the login view after an authentication
// failure. Idempotent and debounced: concurrent failing requests collapse
// into one redirect, and nothing happens while an auth view is already
// active.
func (n *Navigator) ForceLogin(ctx context.Context) {
	n.mu.Lock()
	if IsAuthView(n.current) || time.Since(n.lastForced) < n.debounce {
		n.mu.Unlock()
		return
	}
	n.lastForced = time.Now()
	n.lastFrom = n.current
	n.current = RouteLogin
	notify := n.onChange
	n.mu.Unlock()

	n.log.Warn(ctx, "session expired, redirecting to login")
	if notify != nil {
		notify(RouteLogin)
	}
}
