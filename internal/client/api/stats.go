package api

import "context"

// DashboardStats are the role dashboard counters. The backend returns a
// superset per role; fields missing for a role decode to zero.
type DashboardStats struct {
	TotalListings       int     `json:"total_listings"`
	ActiveListings      int     `json:"active_listings"`
	HighlightedListings int     `json:"highlighted_listings"`
	TotalViews          int     `json:"total_views"`
	TotalUsers          int     `json:"total_users"`
	TotalAgencies       int     `json:"total_agencies"`
	Revenue             float64 `json:"revenue"`
}

// UserStats fetches the counters for the user dashboard.
func (c *Client) UserStats(ctx context.Context) (*DashboardStats, error) {
	return c.stats(ctx, "/stats/user")
}

// AgencyStats fetches the counters for the agency dashboard.
func (c *Client) AgencyStats(ctx context.Context) (*DashboardStats, error) {
	return c.stats(ctx, "/stats/agency")
}

// AdminStats fetches the counters for the admin dashboard.
func (c *Client) AdminStats(ctx context.Context) (*DashboardStats, error) {
	return c.stats(ctx, "/stats/admin")
}

func (c *Client) stats(ctx context.Context, path string) (*DashboardStats, error) {
	var s DashboardStats
	if err := c.get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
