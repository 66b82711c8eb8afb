package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/common"
)

// Plans prints the subscription plans available for the current account
// type. The view is public; anonymous visitors see the user plans.
func (a *App) Plans(ctx context.Context) error {
	a.nav.Navigate(nav.RoutePlans)

	roleType := ""
	if u := a.sessions.User(); u != nil && u.Role == models.RoleAgency {
		roleType = string(models.RoleAgency)
	}

	plans, err := a.api.Plans(ctx, roleType)
	if err != nil {
		printlnFn("Error loading plans:", err.Error())
		return err
	}

	for _, p := range plans {
		limit := fmt.Sprintf("%d listings", p.MaxListings)
		if p.AdsLimit == models.UnlimitedListings {
			limit = "unlimited listings"
		}
		printlnFn(fmt.Sprintf("%s  %-20s R$ %8.2f/month  %s", p.ID, p.Name, p.Price, limit))
	}
	return nil
}

// Subscribe picks a plan and subscribes the account to it. Free plans
// activate immediately; paid plans return a checkout URL the user must
// complete the payment at.
func (a *App) Subscribe(ctx context.Context) error {
	out := a.nav.Navigate(nav.RouteSelectPlan)
	if out.Decision != nav.DecisionAllow {
		if out.Decision == nav.DecisionDefer {
			printlnFn("Still restoring your session, try again in a moment.")
		}
		return nil
	}

	planID, err := getSimpleText(a.reader, "Plan id (see 'plans')", os.Stdout)
	if err != nil {
		return err
	}
	if planID == "" {
		return common.ErrEmptyInput
	}

	result, err := a.api.CreateSubscription(ctx, planID)
	if err != nil {
		printlnFn("Subscription failed:", err.Error())
		return err
	}

	if result.InitPoint != "" {
		printlnFn("Complete the payment at:", result.InitPoint)
		printlnFn("The plan activates once the payment is confirmed.")
		return nil
	}

	printlnFn("Plan activated.")
	a.nav.Navigate(nav.RouteDashboard)
	return nil
}

// SubscriptionStatus prints the active plan and its usage counters.
func (a *App) SubscriptionStatus(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return common.ErrNotAuthenticated
	}

	status, err := a.api.SubscriptionStatus(ctx)
	if err != nil {
		printlnFn("Error loading subscription status:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Plan: %s (R$ %.2f/month)", status.Plan.Name, status.Plan.Price))
	if status.Plan.AdsLimit == models.UnlimitedListings {
		printlnFn(fmt.Sprintf("Listings: %d active, no limit", status.Usage.ActiveListings))
	} else {
		printlnFn(fmt.Sprintf("Listings: %d of %d active, %d remaining",
			status.Usage.ActiveListings, status.Usage.MaxListings, status.RemainingListings()))
	}
	if status.Usage.MaxHighlighted > 0 {
		printlnFn(fmt.Sprintf("Highlights: %d of %d used",
			status.Usage.HighlightedListings, status.Usage.MaxHighlighted))
	}
	return nil
}

// CancelSubscription cancels the active subscription after confirmation.
func (a *App) CancelSubscription(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return common.ErrNotAuthenticated
	}

	confirm, err := getSimpleText(a.reader, "Cancel your subscription? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.api.CancelSubscription(ctx); err != nil {
		printlnFn("Error cancelling subscription:", err.Error())
		return err
	}
	printlnFn("Subscription cancelled.")
	return nil
}
