package cli

import (
	"context"
	"fmt"

	"github.com/anunciabr/anuncia/internal/client/api"
	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
)

// renderView is the navigator's onChange callback. The CLI has no real
// views, so it prints the path of the view the user would now be on,
// with a hint when the guard bounced them to the login page.
func (a *App) renderView(r nav.Route) {
	switch r {
	case nav.RouteLogin:
		printlnFn("-- /login (type 'login' to authenticate)")
	default:
		printlnFn("-- " + string(r))
	}
}

// Open navigates to an arbitrary path, running it through the route guard
// like any other navigation.
func (a *App) Open(ctx context.Context, path string) error {
	out := a.nav.Navigate(nav.Route(path))
	if out.Decision == nav.DecisionDefer {
		printlnFn("Still restoring your session, try again in a moment.")
	}
	return nil
}

// Dashboard opens the role dashboard and prints its counters. Admin and
// agency accounts land on their own dashboards; everyone else on the
// regular one.
func (a *App) Dashboard(ctx context.Context) error {
	target := nav.RouteDashboard
	if u := a.sessions.User(); u != nil {
		target = nav.HomeFor(u.Role)
	}

	out := a.nav.Navigate(target)
	if out.Decision != nav.DecisionAllow {
		if out.Decision == nav.DecisionDefer {
			printlnFn("Still restoring your session, try again in a moment.")
		}
		return nil
	}

	u := a.sessions.User()
	var (
		stats *api.DashboardStats
		err   error
	)
	switch u.Role {
	case models.RoleAdmin:
		stats, err = a.api.AdminStats(ctx)
	case models.RoleAgency:
		stats, err = a.api.AgencyStats(ctx)
	default:
		stats, err = a.api.UserStats(ctx)
	}
	if err != nil {
		printlnFn("Error loading dashboard:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Listings: %d total, %d active, %d highlighted",
		stats.TotalListings, stats.ActiveListings, stats.HighlightedListings))
	printlnFn(fmt.Sprintf("Views: %d", stats.TotalViews))
	if u.Role == models.RoleAdmin {
		printlnFn(fmt.Sprintf("Users: %d, agencies: %d, revenue: R$ %.2f",
			stats.TotalUsers, stats.TotalAgencies, stats.Revenue))
	}
	return nil
}
