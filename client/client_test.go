package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewEncoder(w).Encode(models.User{ID: "user-1", Name: "Mia"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, WithTokenSource(staticToken("tok-123")))
	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.User{ID: "user-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, WithTokenSource(staticToken("")))
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedFiresHookOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookCalls := 0
	c := New(srv.URL, 5*time.Second, WithUnauthorizedHook(func() { hookCalls++ }))
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.GetPost(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "service not offered by provider",
			"details": "svc-1 belongs to prov-2",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.CreateBooking(context.Background(), CreateBookingRequest{
		ServiceID: "svc-1", ProviderID: "prov-1", BookingDate: "2026-03-11T14:00:00Z",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "service not offered by provider", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "422")
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.ListBookings(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestTransportErrorMapsToSentinel(t *testing.T) {
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLikePostSendsNoBodyAndAcceptsEmptyResponse(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	require.NoError(t, c.LikePost(context.Background(), "post-1"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/posts/post-1/like", gotPath)

	require.NoError(t, c.UnlikePost(context.Background(), "post-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestCreateBookingEncodesRequest(t *testing.T) {
	var got CreateBookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{ID: "booking-1", Status: "confirmed"})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	booking, err := c.CreateBooking(context.Background(), CreateBookingRequest{
		ServiceID:   "svc-haircut",
		ProviderID:  "prov-luna",
		BookingDate: "2026-03-11T14:00:00Z",
		Notes:       "first visit",
	})
	require.NoError(t, err)
	assert.Equal(t, "booking-1", booking.ID)
	assert.Equal(t, "svc-haircut", got.ServiceID)
	assert.Equal(t, "prov-luna", got.ProviderID)
	assert.Equal(t, "2026-03-11T14:00:00Z", got.BookingDate)
	assert.Equal(t, "first visit", got.Notes)
}

func TestFollowProviderDecodesAuthoritativeState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/prov-luna/follow", r.URL.Path)
		json.NewEncoder(w).Encode(models.FollowStatus{IsFollowing: true, FollowersCount: 341})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	status, err := c.FollowProvider(context.Background(), "prov-luna")
	require.NoError(t, err)
	assert.True(t, status.IsFollowing)
	assert.Equal(t, 341, status.FollowersCount)
}

func TestGetAvailabilityBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/availability/prov-luna", r.URL.Path)
		assert.Equal(t, "2026-03-11", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(models.Availability{
			ProviderID: "prov-luna", Date: "2026-03-11", Times: []string{"9:00", "14:00"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	avail, err := c.GetAvailability(context.Background(), "prov-luna",
		time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00", "14:00"}, avail.Times)
}

func TestInvalidJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
