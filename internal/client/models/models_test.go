package models

import (
	"testing"

	"github.com/anunciabr/anuncia/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"", RoleUser, true},
		{"user", RoleUser, true},
		{"admin", RoleAdmin, true},
		{"agency", RoleAgency, true},
		{"root", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestUserEncodeDecode(t *testing.T) {
	u := &User{ID: "1", Name: "Maria", Email: "maria@example.com", Role: RoleAgency, PlanID: "p2"}

	data, err := EncodeUser(u)
	require.NoError(t, err)

	got, err := DecodeUser(data)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestDecodeUser_Invalid(t *testing.T) {
	_, err := DecodeUser([]byte("{not json"))
	assert.Error(t, err)
}

func TestCanCreateListing(t *testing.T) {
	const n = 5

	tests := []struct {
		name   string
		limit  int
		active int
		want   bool
	}{
		{"unlimited zero", UnlimitedListings, 0, true},
		{"unlimited at large count", UnlimitedListings, 10000, true},
		{"below limit", n, 0, true},
		{"one before limit", n, n - 1, true},
		{"at limit", n, n, false},
		{"over limit", n, n + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SubscriptionStatus{
				Plan:  Plan{AdsLimit: tt.limit},
				Usage: Usage{ActiveListings: tt.active, MaxListings: tt.limit},
			}
			assert.Equal(t, tt.want, s.CanCreateListing())
		})
	}
}

func TestRemainingListings(t *testing.T) {
	s := &SubscriptionStatus{Plan: Plan{AdsLimit: 5}, Usage: Usage{ActiveListings: 3, MaxListings: 5}}
	assert.Equal(t, 2, s.RemainingListings())

	s.Usage.ActiveListings = 7
	assert.Equal(t, 0, s.RemainingListings())

	s.Plan.AdsLimit = UnlimitedListings
	assert.Equal(t, UnlimitedListings, s.RemainingListings())
}

func TestListingDraft_SetPrice(t *testing.T) {
	var d ListingDraft

	require.NoError(t, d.SetPrice("1500"))
	assert.Equal(t, 1500.0, d.Price)

	require.NoError(t, d.SetPrice("1500.50"))
	assert.Equal(t, 1500.50, d.Price)

	require.NoError(t, d.SetPrice("1.500,50"))
	assert.Equal(t, 1500.50, d.Price)

	assert.ErrorIs(t, d.SetPrice(""), common.ErrEmptyInput)
	assert.ErrorIs(t, d.SetPrice("abc"), common.ErrInvalidPrice)
	assert.ErrorIs(t, d.SetPrice("-10"), common.ErrInvalidPrice)
}

func TestListingDraft_Complete(t *testing.T) {
	d := ListingDraft{Title: "Bike", CategoryID: "c1", Description: "Aro 29", City: "Curitiba"}
	assert.True(t, d.Complete())

	d.City = ""
	assert.False(t, d.Complete())
}
