package guard

import (
	"testing"

	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func authed(role models.Role) session.State {
	return session.State{Authenticated: true, User: &models.User{ID: "1", Role: role}}
}

func TestEvaluate_PublicRouteAlwaysAllowed(t *testing.T) {
	for _, st := range []session.State{
		{},
		{Loading: true},
		authed(models.RoleUser),
	} {
		out := Evaluate(st, nav.RouteHome)
		assert.Equal(t, nav.DecisionAllow, out.Decision)
	}
}

func TestEvaluate_DeferredWhileLoading(t *testing.T) {
	// Even a session that would eventually be denied must defer, not
	// redirect, while hydration is in progress.
	st := session.State{Loading: true}

	out := Evaluate(st, nav.RouteAdminHome)
	assert.Equal(t, nav.DecisionDefer, out.Decision)
	assert.Equal(t, nav.RouteAdminHome, out.From)
}

func TestEvaluate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	out := Evaluate(session.State{}, nav.RouteDashboard)

	assert.Equal(t, nav.DecisionRedirect, out.Decision)
	assert.Equal(t, nav.RouteLogin, out.Target)
	assert.Equal(t, nav.RouteDashboard, out.From)
}

func TestEvaluate_PartialSessionIsUnauthenticated(t *testing.T) {
	// Authenticated flag without a user record must not pass the guard.
	st := session.State{Authenticated: true, User: nil}

	out := Evaluate(st, nav.RouteDashboard)
	assert.Equal(t, nav.DecisionRedirect, out.Decision)
	assert.Equal(t, nav.RouteLogin, out.Target)
}

func TestEvaluate_AnyAuthenticatedRoleForPlainRequirement(t *testing.T) {
	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin, models.RoleAgency} {
		out := Evaluate(authed(role), nav.RouteDashboard)
		assert.Equal(t, nav.DecisionAllow, out.Decision, string(role))
	}
}

func TestEvaluate_RoleRedirectGoesToOwnHome(t *testing.T) {
	tests := []struct {
		role      models.Role
		requested nav.Route
		wantHome  nav.Route
	}{
		{models.RoleUser, nav.RouteAdminHome, nav.RouteDashboard},
		{models.RoleUser, nav.RouteAgencyHome, nav.RouteDashboard},
		{models.RoleAdmin, nav.RouteAgencyHome, nav.RouteAdminHome},
		{models.RoleAgency, nav.RouteAdminHome, nav.RouteAgencyHome},
	}

	for _, tt := range tests {
		out := Evaluate(authed(tt.role), tt.requested)

		assert.Equal(t, nav.DecisionRedirect, out.Decision)
		assert.Equal(t, tt.wantHome, out.Target, "%s requesting %s", tt.role, tt.requested)
		assert.NotEqual(t, tt.requested, out.Target)
	}
}

func TestEvaluate_MatchingRoleAllowed(t *testing.T) {
	out := Evaluate(authed(models.RoleAdmin), nav.RouteAdminHome)
	assert.Equal(t, nav.DecisionAllow, out.Decision)

	out = Evaluate(authed(models.RoleAgency), nav.RouteAgencyHome)
	assert.Equal(t, nav.DecisionAllow, out.Decision)
}

// fakeSessions drives Guard through the nav.Decider interface.
type fakeSessions struct{ st session.State }

func (f *fakeSessions) Snapshot() session.State { return f.st }

func TestGuard_Decide(t *testing.T) {
	g := New(&fakeSessions{st: authed(models.RoleUser)})

	out := g.Decide(nav.RouteCreateListing)
	assert.Equal(t, nav.DecisionAllow, out.Decision)

	out = g.Decide(nav.RouteAdminHome)
	assert.Equal(t, nav.DecisionRedirect, out.Decision)
	assert.Equal(t, nav.RouteDashboard, out.Target)
}
