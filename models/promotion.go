package models

import "time"

// Promotion is a provider or platform discount campaign.
type Promotion struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"providerId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Code        string    `json:"code"`
	DiscountPct float64   `json:"discountPct"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Redeemed    bool      `json:"redeemed,omitempty"`
}

// LoyaltyStatus is the user's standing in the loyalty program.
type LoyaltyStatus struct {
	Points int    `json:"points"`
	Tier   string `json:"tier"` // e.g. "bronze", "silver", "gold"
}
