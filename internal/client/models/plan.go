package models

// UnlimitedListings is the sentinel the backend uses for plans without a
// listing cap.
const UnlimitedListings = -1

// Plan is a subscription tier with its numeric limits.
type Plan struct {
	ID            string  `json:"id"`
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	AdsLimit      int     `json:"ads_limit"`
	MaxListings   int     `json:"max_listings"`
	HighlightDays int     `json:"highlight_days"`
	Features      string  `json:"features,omitempty"`
}

// Usage is a point-in-time read of quota consumption for the current
// subscription. It is fetched fresh before every gated action and never
// cached across navigations.
type Usage struct {
	ActiveListings      int `json:"active_listings"`
	MaxListings         int `json:"max_listings"`
	HighlightedListings int `json:"highlighted_listings"`
	MaxHighlighted      int `json:"max_highlighted"`
}

// SubscriptionStatus pairs the active plan with its usage counters, as
// returned by GET /subscriptions/status.
type SubscriptionStatus struct {
	Plan  Plan  `json:"plan"`
	Usage Usage `json:"usage"`
}

// CanCreateListing reports whether another listing fits in the plan.
// A -1 ads limit means unlimited.
func (s *SubscriptionStatus) CanCreateListing() bool {
	if s.Plan.AdsLimit == UnlimitedListings {
		return true
	}
	return s.Usage.ActiveListings < s.Usage.MaxListings
}

// RemainingListings returns the number of listings still available, or
// UnlimitedListings for unlimited plans.
func (s *SubscriptionStatus) RemainingListings() int {
	if s.Plan.AdsLimit == UnlimitedListings {
		return UnlimitedListings
	}
	if r := s.Usage.MaxListings - s.Usage.ActiveListings; r > 0 {
		return r
	}
	return 0
}
