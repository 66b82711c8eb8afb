// Package quota gates listing creation against the plan's usage limits.
// Usage is fetched fresh from the backend before every gated action; a
// fetch failure blocks creation (fail-closed) rather than bypassing the
// limit the gate exists to enforce.
package quota

import (
	"context"
	"fmt"

	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/logging"
)

// UsageFetcher is the slice of the API surface the gate needs.
// *api.Client satisfies it.
type UsageFetcher interface {
	SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error)
}

// Decision is the gate's verdict for a create-listing attempt. When the
// quota is exhausted the two exits offered to the user are UpgradeRoute
// and BackRoute; the creation form must not be reachable.
type Decision struct {
	Allowed      bool
	Status       *models.SubscriptionStatus
	UpgradeRoute nav.Route
	BackRoute    nav.Route
}

// Gate checks plan usage before permitting listing creation.
type Gate struct {
	usage UsageFetcher
	log   logging.Logger
}

func New(usage UsageFetcher, log logging.Logger) *Gate {
	return &Gate{usage: usage, log: log}
}

// Check fetches the current usage snapshot and decides whether another
// listing may be created. Errors are returned as-is for the caller to
// present a retryable state; they never grant access.
func (g *Gate) Check(ctx context.Context) (*Decision, error) {
	status, err := g.usage.SubscriptionStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch subscription status: %w", err)
	}

	d := &Decision{
		Allowed:      status.CanCreateListing(),
		Status:       status,
		UpgradeRoute: nav.RoutePlans,
		BackRoute:    nav.RouteDashboard,
	}
	if !d.Allowed {
		g.log.Info(ctx, "listing creation blocked by plan limit",
			"active", status.Usage.ActiveListings,
			"max", status.Usage.MaxListings,
			"plan", status.Plan.Name)
	}
	return d, nil
}
