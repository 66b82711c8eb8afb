package api

import (
	"context"
	"net/url"

	"github.com/anunciabr/anuncia/internal/client/models"
)

// CreateListing publishes a completed draft. Sent with an idempotency key
// so a duplicated submit cannot consume two quota slots.
func (c *Client) CreateListing(ctx context.Context, draft *models.ListingDraft) (*models.Listing, error) {
	body := map[string]any{
		"title":       draft.Title,
		"description": draft.Description,
		"price":       draft.Price,
		"category_id": draft.CategoryID,
		"city":        draft.City,
		"phone":       draft.Phone,
	}
	var listing models.Listing
	if err := c.post(ctx, "/listings", body, &listing, true); err != nil {
		return nil, err
	}
	return &listing, nil
}

// MyListings returns the authenticated account's own listings.
func (c *Client) MyListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := c.get(ctx, "/listings/my", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// DeleteListing removes one of the account's listings.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.delete(ctx, "/listings/"+url.PathEscape(id))
}
