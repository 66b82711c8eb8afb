// Package guard decides, per navigation, whether the requested view is
// allowed for the current session. It holds no state of its own: every
// verdict is a pure function of the session snapshot and the route's
// declared requirement.
package guard

import (
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/client/session"
)

// Sessions is the read-only session view the guard needs.
type Sessions interface {
	Snapshot() session.State
}

// Guard implements nav.Decider over the session store.
type Guard struct {
	sessions Sessions
}

func New(sessions Sessions) *Guard {
	return &Guard{sessions: sessions}
}

// Decide evaluates the requested route against the current session.
func (g *Guard) Decide(to nav.Route) nav.Outcome {
	return Evaluate(g.sessions.Snapshot(), to)
}

// Evaluate is the decision function behind Decide, exposed for direct use
// in tests and anywhere a snapshot is already at hand.
//
// Verdicts, in order:
//   - public route → allow;
//   - hydration in progress → defer (never a redirect);
//   - unauthenticated → redirect to login, remembering the origin;
//   - wrong role → redirect to the session role's own home dashboard;
//   - otherwise → allow.
func Evaluate(st session.State, to nav.Route) nav.Outcome {
	req := nav.RequirementFor(to)
	if req == nil {
		return nav.Outcome{Decision: nav.DecisionAllow, Target: to}
	}

	if st.Loading {
		return nav.Outcome{Decision: nav.DecisionDefer, From: to}
	}

	if !st.Authenticated || st.User == nil {
		return nav.Outcome{Decision: nav.DecisionRedirect, Target: nav.RouteLogin, From: to}
	}

	if req.Role != "" && st.User.Role != req.Role {
		return nav.Outcome{Decision: nav.DecisionRedirect, Target: nav.HomeFor(st.User.Role), From: to}
	}

	return nav.Outcome{Decision: nav.DecisionAllow, Target: to}
}
