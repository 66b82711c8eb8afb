package api

import (
	"context"

	"github.com/anunciabr/anuncia/internal/client/models"
)

// SubscriptionResult is the outcome of creating a subscription. For paid
// plans InitPoint carries the payment-gateway checkout URL; free plans
// activate directly and leave it empty.
type SubscriptionResult struct {
	InitPoint string `json:"init_point,omitempty"`
}

// SubscriptionStatus fetches the active plan and its usage counters.
func (c *Client) SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error) {
	var status models.SubscriptionStatus
	if err := c.get(ctx, "/subscriptions/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CreateSubscription subscribes the account to a plan. The call is sent
// with an idempotency key: it creates a billable resource.
func (c *Client) CreateSubscription(ctx context.Context, planID string) (*SubscriptionResult, error) {
	body := map[string]string{"plan_id": planID}
	var result SubscriptionResult
	if err := c.post(ctx, "/subscriptions/create", body, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelSubscription cancels the active subscription.
func (c *Client) CancelSubscription(ctx context.Context) error {
	return c.post(ctx, "/subscriptions/cancel", nil, nil, false)
}

// Plans lists the plans available for the given account type ("user" or
// "agency"); an empty roleType lists everything.
func (c *Client) Plans(ctx context.Context, roleType string) ([]models.Plan, error) {
	path := "/plans"
	if roleType != "" {
		path += "?type=" + roleType
	}
	var plans []models.Plan
	if err := c.get(ctx, path, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
