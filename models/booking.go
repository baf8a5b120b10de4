package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProviderID  string    `json:"providerId"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName,omitempty"`
	BookingDate time.Time `json:"bookingDate"` // ISO 8601 on the wire
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"` // e.g. "confirmed", "cancelled"
	TotalPrice  float64   `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Availability lists the time slots a provider still has open on a date.
type Availability struct {
	ProviderID string   `json:"providerId"`
	Date       string   `json:"date"` // "YYYY-MM-DD"
	Times      []string `json:"times"`
}
