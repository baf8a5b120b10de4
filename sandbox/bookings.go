package sandbox

import (
	"net/http"
	"sort"
	"time"

	"glowbook/models"
	svcbooking "glowbook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) createBookingHandler(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		ServiceID   string `json:"serviceId" binding:"required"`
		ProviderID  string `json:"providerId" binding:"required"`
		BookingDate string `json:"bookingDate" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	bookingDate, err := time.Parse(time.RFC3339, req.BookingDate)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", "bookingDate must be ISO 8601")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.providers[req.ProviderID]; !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}
	svc, ok := s.state.services[req.ServiceID]
	if !ok || svc.ProviderID != req.ProviderID {
		jsonError(c, http.StatusUnprocessableEntity, "service not offered by provider", "")
		return
	}

	booking := &models.Booking{
		ID:          "booking-" + uuid.New().String()[:8],
		UserID:      userID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		ServiceName: svc.Name,
		BookingDate: bookingDate,
		Notes:       req.Notes,
		Status:      "confirmed",
		TotalPrice:  svc.Price,
		CreatedAt:   time.Now(),
	}
	s.state.bookings[booking.ID] = booking

	// Bookings feed the loyalty balance: one point per dollar.
	if loyalty, ok := s.state.loyalty[userID]; ok {
		loyalty.Points += int(svc.Price)
	}

	c.JSON(http.StatusCreated, booking)
}

func (s *Server) listBookingsHandler(c *gin.Context) {
	userID := currentUserID(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	bookings := []models.Booking{}
	for _, b := range s.state.bookings {
		if b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.Before(bookings[j].BookingDate)
	})
	c.JSON(http.StatusOK, bookings)
}

func (s *Server) cancelBookingHandler(c *gin.Context) {
	userID := currentUserID(c)
	bookingID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	booking, ok := s.state.bookings[bookingID]
	if !ok || booking.UserID != userID {
		jsonError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	booking.Status = "cancelled"
	c.Status(http.StatusNoContent)
}

// availabilityHandler returns the half-hour grid minus the provider's
// already-booked start times for the requested date.
func (s *Server) availabilityHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	dateStr := c.Query("date")
	if dateStr == "" {
		jsonError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", "date must be YYYY-MM-DD")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.providers[providerID]; !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}

	taken := map[string]bool{}
	for _, b := range s.state.bookings {
		if b.ProviderID != providerID || b.Status == "cancelled" {
			continue
		}
		if b.BookingDate.Format("2006-01-02") == dateStr {
			taken[b.BookingDate.Format("15:04")] = true
			taken[trimLeadingZero(b.BookingDate.Format("15:04"))] = true
		}
	}

	times := []string{}
	for _, t := range svcbooking.TimeCatalog() {
		if !taken[t] {
			times = append(times, t)
		}
	}
	c.JSON(http.StatusOK, models.Availability{
		ProviderID: providerID,
		Date:       dateStr,
		Times:      times,
	})
}

func trimLeadingZero(t string) string {
	if len(t) > 0 && t[0] == '0' {
		return t[1:]
	}
	return t
}
