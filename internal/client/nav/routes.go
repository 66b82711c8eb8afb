// Package nav defines the client's navigable routes, their access
// requirements, and the navigator that moves between views.
package nav

import "github.com/anunciabr/anuncia/internal/client/models"

// Route identifies a navigable view. Paths mirror the web frontend.
type Route string

const (
	RouteHome          Route = "/"
	RouteLogin         Route = "/login"
	RouteRegister      Route = "/cadastro"
	RoutePlans         Route = "/planos"
	RouteSelectPlan    Route = "/escolher-plano"
	RouteDashboard     Route = "/dashboard"
	RouteMyListings    Route = "/dashboard/anuncios"
	RouteCreateListing Route = "/anunciar"
	RouteAdminHome     Route = "/admin"
	RouteAgencyHome    Route = "/imobiliaria"
)

// Requirement is the declarative access rule attached to a route. A nil
// Requirement means the view is public. An empty Role means any
// authenticated identity.
type Requirement struct {
	Role models.Role
}

// requirements maps gated routes to their rule. Routes absent from the map
// are public.
var requirements = map[Route]*Requirement{
	RouteDashboard:     {},
	RouteMyListings:    {},
	RouteCreateListing: {},
	RouteSelectPlan:    {},
	RouteAdminHome:     {Role: models.RoleAdmin},
	RouteAgencyHome:    {Role: models.RoleAgency},
}

// RequirementFor returns the access rule for a route, or nil for public
// views.
func RequirementFor(route Route) *Requirement {
	return requirements[route]
}

// HomeFor maps a role to its home dashboard. The mapping is fixed, not
// configurable per route.
func HomeFor(role models.Role) Route {
	switch role {
	case models.RoleAdmin:
		return RouteAdminHome
	case models.RoleAgency:
		return RouteAgencyHome
	default:
		return RouteDashboard
	}
}

// IsAuthView reports whether the route is part of the login/registration
// flow. Authentication failures on these views never trigger a redirect.
func IsAuthView(route Route) bool {
	return route == RouteLogin || route == RouteRegister
}
