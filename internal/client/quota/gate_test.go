package quota

import (
	"context"
	"fmt"
	"testing"

	"github.com/anunciabr/anuncia/internal/client/api"
	"github.com/anunciabr/anuncia/internal/client/models"
	"github.com/anunciabr/anuncia/internal/client/nav"
	"github.com/anunciabr/anuncia/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsage struct {
	Ret   *models.SubscriptionStatus
	Err   error
	Calls int
}

func (f *fakeUsage) SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error) {
	f.Calls++
	return f.Ret, f.Err
}

func newGate(f *fakeUsage) *Gate {
	return New(f, logging.NewZerologLogger(zerolog.Nop()))
}

func status(limit, active int) *models.SubscriptionStatus {
	return &models.SubscriptionStatus{
		Plan:  models.Plan{Name: "Profissional", AdsLimit: limit},
		Usage: models.Usage{ActiveListings: active, MaxListings: limit},
	}
}

func TestCheck_QuotaInvariant(t *testing.T) {
	const n = 5

	tests := []struct {
		name   string
		limit  int
		active int
		want   bool
	}{
		{"unlimited ignores count", models.UnlimitedListings, 10000, true},
		{"empty plan", n, 0, true},
		{"one slot left", n, n - 1, true},
		{"limit reached", n, n, false},
		{"over limit", n, n + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGate(&fakeUsage{Ret: status(tt.limit, tt.active)})

			d, err := g.Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Allowed)
		})
	}
}

func TestCheck_BlockedOffersExits(t *testing.T) {
	g := newGate(&fakeUsage{Ret: status(5, 5)})

	d, err := g.Check(context.Background())
	require.NoError(t, err)

	assert.False(t, d.Allowed)
	assert.Equal(t, nav.RoutePlans, d.UpgradeRoute)
	assert.Equal(t, nav.RouteDashboard, d.BackRoute)
	assert.Equal(t, 5, d.Status.Usage.ActiveListings)
}

func TestCheck_FetchFailureIsFailClosed(t *testing.T) {
	f := &fakeUsage{Err: fmt.Errorf("%w: timeout", api.ErrUnavailable)}
	g := newGate(f)

	d, err := g.Check(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Nil(t, d, "an error must never grant access")
}

func TestCheck_FetchesFreshEveryTime(t *testing.T) {
	f := &fakeUsage{Ret: status(5, 4)}
	g := newGate(f)

	_, err := g.Check(context.Background())
	require.NoError(t, err)

	f.Ret = status(5, 5)
	d, err := g.Check(context.Background())
	require.NoError(t, err)

	assert.False(t, d.Allowed)
	assert.Equal(t, 2, f.Calls, "usage must not be cached between checks")
}
