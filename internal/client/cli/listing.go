package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/common"
)

// CreateListing runs the listing creation flow: navigate to the creation
// view, check the plan quota against fresh usage, then fill and submit the
// draft. When the quota check fails or the limit is reached the form is
// never shown; a blocked user chooses between the plans page and the
// dashboard.
//
// A draft interrupted by an input error is kept and resumed on the next
// attempt. Logging out discards it.
func (a *App) CreateListing(ctx context.Context) error {
	out := a.nav.Navigate(nav.RouteCreateListing)
	if out.Decision != nav.DecisionAllow {
		if out.Decision == nav.DecisionDefer {
			printlnFn("Still restoring your session, try again in a moment.")
		}
		return nil
	}

	decision, err := a.gate.Check(ctx)
	if err != nil {
		printlnFn("Could not verify your plan limits, please try again:", err.Error())
		return err
	}
	if !decision.Allowed {
		return a.quotaBlocked(decision.Status)
	}
	if r := decision.Status.RemainingListings(); r != models.UnlimitedListings {
		printlnFn(fmt.Sprintf("You can create %d more listing(s) on the %s plan.", r, decision.Status.Plan.Name))
	}

	draft, err := a.fillDraft()
	if err != nil {
		printlnFn("Listing not submitted, your draft was kept.")
		return err
	}

	listing, err := a.api.CreateListing(ctx, draft)
	if err != nil {
		printlnFn("Could not publish the listing:", err.Error())
		return err
	}
	a.clearDraft()

	printlnFn(fmt.Sprintf("Listing published: %s (%s)", listing.Title, listing.ID))
	a.nav.Navigate(nav.RouteMyListings)
	return nil
}

// quotaBlocked explains the exhausted limit and offers the two exits.
func (a *App) quotaBlocked(status *models.SubscriptionStatus) error {
	printlnFn(fmt.Sprintf("Your %s plan limit is reached: %d of %d active listings.",
		status.Plan.Name, status.Usage.ActiveListings, status.Usage.MaxListings))

	choice, err := getSimpleText(a.reader, "Type 'upgrade' to see plans, anything else to go back", os.Stdout)
	if err != nil {
		return err
	}
	if choice == "upgrade" {
		a.nav.Navigate(nav.RoutePlans)
	} else {
		a.nav.Navigate(nav.RouteDashboard)
	}
	return nil
}

// fillDraft prompts for the fields still missing from the current draft.
func (a *App) fillDraft() (*models.ListingDraft, error) {
	a.draftMu.Lock()
	if a.draft == nil {
		a.draft = &models.ListingDraft{}
	}
	draft := a.draft
	a.draftMu.Unlock()

	if draft.Title == "" {
		title, err := getSimpleText(a.reader, "Title", os.Stdout)
		if err != nil {
			return nil, err
		}
		if title == "" {
			return nil, common.ErrEmptyInput
		}
		draft.Title = title
	}

	if draft.CategoryID == "" {
		category, err := getSimpleText(a.reader, "Category", os.Stdout)
		if err != nil {
			return nil, err
		}
		if category == "" {
			return nil, common.ErrEmptyInput
		}
		draft.CategoryID = category
	}

	if draft.Description == "" {
		description, err := getMultiline(a.reader, "Description", os.Stdout)
		if err != nil {
			return nil, err
		}
		if description == "" {
			return nil, common.ErrEmptyInput
		}
		draft.Description = description
	}

	if draft.Price == 0 {
		raw, err := getSimpleText(a.reader, "Price (e.g. 1.500,50)", os.Stdout)
		if err != nil {
			return nil, err
		}
		if err := draft.SetPrice(raw); err != nil {
			printlnFn("Invalid price:", raw)
			return nil, err
		}
	}

	if draft.City == "" {
		city, err := getSimpleText(a.reader, "City", os.Stdout)
		if err != nil {
			return nil, err
		}
		if city == "" {
			return nil, common.ErrEmptyInput
		}
		draft.City = city
	}

	if draft.Phone == "" {
		phone, err := getSimpleText(a.reader, "Contact phone (optional)", os.Stdout)
		if err != nil {
			return nil, err
		}
		draft.Phone = phone
	}

	return draft, nil
}

// MyListings prints the account's own listings.
func (a *App) MyListings(ctx context.Context) error {
	out := a.nav.Navigate(nav.RouteMyListings)
	if out.Decision != nav.DecisionAllow {
		if out.Decision == nav.DecisionDefer {
			printlnFn("Still restoring your session, try again in a moment.")
		}
		return nil
	}

	listings, err := a.api.MyListings(ctx)
	if err != nil {
		printlnFn("Error loading listings:", err.Error())
		return err
	}
	if len(listings) == 0 {
		printlnFn("You have no listings yet. Type 'create' to publish one.")
		return nil
	}

	for _, l := range listings {
		marker := " "
		if l.Highlighted {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %-30s R$ %10.2f  %s", marker, l.ID, l.Title, l.Price, l.Status))
	}
	return nil
}

// DeleteListing removes one of the account's listings after confirmation.
func (a *App) DeleteListing(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return common.ErrNotAuthenticated
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete listing %s? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.api.DeleteListing(ctx, id); err != nil {
		printlnFn("Error deleting listing:", err.Error())
		return err
	}
	printlnFn("Listing deleted.")
	return nil
}
