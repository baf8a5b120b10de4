package models

// Service represents a single bookable offering on a provider's storefront.
type Service struct {
	ID              string  `json:"id"`
	ProviderID      string  `json:"providerId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"` // e.g. "Hair", "Nails", "Skincare"
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}
