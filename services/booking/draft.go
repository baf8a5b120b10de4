// File: glowbook/services/booking/draft.go
package booking

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"glowbook/client"
	"glowbook/models"

	"go.uber.org/zap"
)

// Phase is the draft's position in the booking flow.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseServiceChosen
	PhaseReadyToSubmit
	PhaseSubmitting
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseServiceChosen:
		return "service_chosen"
	case PhaseReadyToSubmit:
		return "ready_to_submit"
	case PhaseSubmitting:
		return "submitting"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Creator performs the booking-creation call. Satisfied by *client.Client.
type Creator interface {
	CreateBooking(ctx context.Context, req client.CreateBookingRequest) (*models.Booking, error)
}

// Draft is the transient selection state for one in-progress booking. It
// lives only as long as the booking screen; nothing is persisted until
// submission succeeds. The date defaults to today, so choosing a service is
// enough to make the date picker meaningful immediately.
type Draft struct {
	mu         sync.Mutex
	providerID string
	service    *models.Service
	date       time.Time
	timeSlot   string
	notes      string
	submitting bool
	confirmed  bool
	now        func() time.Time
	logger     *zap.Logger
}

// DraftOption customizes a Draft.
type DraftOption func(*Draft)

// WithClock overrides the draft's time source.
func WithClock(now func() time.Time) DraftOption {
	return func(d *Draft) { d.now = now }
}

// WithDraftLogger sets the draft logger.
func WithDraftLogger(logger *zap.Logger) DraftOption {
	return func(d *Draft) { d.logger = logger }
}

// NewDraft creates an empty draft for a provider, dated today.
func NewDraft(providerID string, opts ...DraftOption) *Draft {
	d := &Draft{
		providerID: providerID,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	n := d.now()
	d.date = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
	return d
}

// Phase reports the draft's current state.
func (d *Draft) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phaseLocked()
}

func (d *Draft) phaseLocked() Phase {
	switch {
	case d.confirmed:
		return PhaseConfirmed
	case d.submitting:
		return PhaseSubmitting
	case d.service == nil:
		return PhaseEmpty
	case d.timeSlot == "":
		return PhaseServiceChosen
	default:
		return PhaseReadyToSubmit
	}
}

// SelectService picks a service, replacing any prior choice. The draft never
// holds two services.
func (d *Draft) SelectService(s models.Service) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.mutableLocked(); err != nil {
		return err
	}
	svc := s
	d.service = &svc
	return nil
}

// SelectDate picks a booking date (time-of-day is ignored).
func (d *Draft) SelectDate(date time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.mutableLocked(); err != nil {
		return err
	}
	d.date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return nil
}

// SelectTime picks a start time from the catalog, replacing any prior
// choice. Malformed or off-catalog values are rejected.
func (d *Draft) SelectTime(slot string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.mutableLocked(); err != nil {
		return err
	}
	if _, _, err := parseTimeSlot(slot); err != nil {
		return err
	}
	if !onGrid(slot) {
		return fmt.Errorf("time slot %q is not offered", slot)
	}
	d.timeSlot = slot
	return nil
}

// SetNotes attaches free-text notes to the draft.
func (d *Draft) SetNotes(notes string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.mutableLocked(); err != nil {
		return err
	}
	d.notes = notes
	return nil
}

func (d *Draft) mutableLocked() error {
	if d.submitting {
		return ErrSubmitInProgress
	}
	if d.confirmed {
		return ErrDraftConfirmed
	}
	return nil
}

// Service returns the selected service, if any.
func (d *Draft) Service() *models.Service {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.service == nil {
		return nil
	}
	svc := *d.service
	return &svc
}

// Date returns the selected booking date.
func (d *Draft) Date() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.date
}

// TimeSlot returns the selected start time, or "" when none is chosen.
func (d *Draft) TimeSlot() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timeSlot
}

// Notes returns the draft notes.
func (d *Draft) Notes() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notes
}

// TotalPrice is the price shown to the user: always the selected service's
// listed price. No discount or promo math happens client-side in this flow.
func (d *Draft) TotalPrice() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.service == nil {
		return 0
	}
	return d.service.Price
}

// CanSubmit reports whether the draft is complete enough to submit.
func (d *Draft) CanSubmit() bool {
	return d.Phase() == PhaseReadyToSubmit
}

// Validate returns the specific reason the draft cannot be submitted, or nil.
func (d *Draft) Validate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.validateLocked()
}

func (d *Draft) validateLocked() error {
	if d.service == nil {
		return ErrNoServiceSelected
	}
	if d.timeSlot == "" {
		return ErrNoTimeSelected
	}
	return nil
}

// Submit sends the booking to the backend. It is only legal from
// ReadyToSubmit: validation failures are rejected locally and no network
// call is issued. On failure the selections are preserved so the user can
// retry; on success the draft is cleared and a confirmation line like
// "Tomorrow at 14:00 — $50" is returned alongside the created record.
func (d *Draft) Submit(ctx context.Context, api Creator) (*models.Booking, string, error) {
	d.mu.Lock()
	if d.submitting {
		d.mu.Unlock()
		return nil, "", ErrSubmitInProgress
	}
	if d.confirmed {
		d.mu.Unlock()
		return nil, "", ErrDraftConfirmed
	}
	if err := d.validateLocked(); err != nil {
		d.mu.Unlock()
		return nil, "", err
	}

	hour, minute, err := parseTimeSlot(d.timeSlot)
	if err != nil {
		d.mu.Unlock()
		return nil, "", err
	}
	bookingDate := time.Date(d.date.Year(), d.date.Month(), d.date.Day(), hour, minute, 0, 0, d.date.Location())
	confirmation := fmt.Sprintf("%s at %s — %s",
		DateLabel(d.date, d.now()), d.timeSlot, formatPrice(d.service.Price))
	req := client.CreateBookingRequest{
		ServiceID:   d.service.ID,
		ProviderID:  d.providerID,
		BookingDate: bookingDate.Format(time.RFC3339),
		Notes:       d.notes,
	}
	d.submitting = true
	d.mu.Unlock()

	record, err := api.CreateBooking(ctx, req)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitting = false
	if err != nil {
		// Back to ReadyToSubmit with every selection intact.
		d.logger.Warn("booking submission failed",
			zap.String("providerId", d.providerID), zap.Error(err))
		return nil, "", fmt.Errorf("failed to submit booking: %w", err)
	}

	d.confirmed = true
	d.service = nil
	d.timeSlot = ""
	d.notes = ""
	d.logger.Info("booking confirmed",
		zap.String("bookingId", record.ID), zap.String("providerId", d.providerID))
	return record, confirmation, nil
}

func formatPrice(p float64) string {
	if p == math.Trunc(p) {
		return fmt.Sprintf("$%.0f", p)
	}
	return fmt.Sprintf("$%.2f", p)
}
