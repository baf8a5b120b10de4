package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"glowbook/models"
)

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId"`
	ProviderID  string `json:"providerId"`
	BookingDate string `json:"bookingDate"` // ISO 8601
	Notes       string `json:"notes,omitempty"`
}

// CreateBooking submits a booking and returns the created record.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &out); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &out, nil
}

// ListBookings fetches the current user's bookings.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return out, nil
}

// CancelBooking cancels a booking by id.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+pathEscape(bookingID), nil, nil); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return nil
}

// GetAvailability fetches the provider's open time slots for a date.
func (c *Client) GetAvailability(ctx context.Context, providerID string, date time.Time) (*models.Availability, error) {
	path := fmt.Sprintf("/bookings/availability/%s?date=%s",
		pathEscape(providerID), url.QueryEscape(date.Format("2006-01-02")))
	var out models.Availability
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for provider %s: %w", providerID, err)
	}
	return &out, nil
}
