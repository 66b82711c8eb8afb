package models

import (
	"strconv"
	"strings"

	"github.com/anunciabr/anuncia/internal/common"
)

// Listing is a published classified ad.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"category_id"`
	City        string  `json:"city"`
	Phone       string  `json:"phone,omitempty"`
	Status      string  `json:"status,omitempty"`
	Highlighted bool    `json:"highlighted,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// ListingDraft accumulates the multi-step creation form. Steps mutate the
// draft locally; nothing is sent to the backend until Submit.
type ListingDraft struct {
	Title       string
	CategoryID  string
	Description string
	Price       float64
	City        string
	Phone       string
}

// SetPrice parses a user-entered price ("1500", "1500.50", "1.500,50").
func (d *ListingDraft) SetPrice(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.ErrEmptyInput
	}
	// Brazilian format: thousands dot, decimal comma.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return common.ErrInvalidPrice
	}
	d.Price = v
	return nil
}

// Complete reports whether all mandatory fields are filled.
func (d *ListingDraft) Complete() bool {
	return d.Title != "" && d.CategoryID != "" && d.Description != "" && d.City != ""
}
