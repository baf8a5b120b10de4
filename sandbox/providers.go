package sandbox

import (
	"net/http"
	"sort"
	"strings"

	"glowbook/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) getProviderHandler(c *gin.Context) {
	userID := currentUserID(c)
	providerID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	provider, ok := s.state.providers[providerID]
	if !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}
	c.JSON(http.StatusOK, s.state.viewProvider(provider, userID))
}

func (s *Server) searchProvidersHandler(c *gin.Context) {
	userID := currentUserID(c)
	query := strings.ToLower(c.Query("q"))

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	results := []models.Provider{}
	for _, p := range s.state.providers {
		if query == "" ||
			strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Bio), query) ||
			strings.Contains(strings.ToLower(p.Location), query) {
			results = append(results, s.state.viewProvider(p, userID))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	c.JSON(http.StatusOK, results)
}

// followProviderHandler flips the follow edge and returns the authoritative
// state, which the clients use for reconciliation.
func (s *Server) followProviderHandler(c *gin.Context) {
	s.setFollow(c, true)
}

func (s *Server) unfollowProviderHandler(c *gin.Context) {
	s.setFollow(c, false)
}

func (s *Server) setFollow(c *gin.Context, on bool) {
	userID := currentUserID(c)
	providerID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.providers[providerID]; !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}
	s.state.setLike(s.state.follows, providerID, userID, on)
	c.JSON(http.StatusOK, models.FollowStatus{
		IsFollowing:    on,
		FollowersCount: len(s.state.follows[providerID]),
	})
}

func (s *Server) listServicesHandler(c *gin.Context) {
	providerID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.providers[providerID]; !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}
	services := []models.Service{}
	for _, svc := range s.state.services {
		if svc.ProviderID == providerID {
			services = append(services, *svc)
		}
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	c.JSON(http.StatusOK, services)
}

func (s *Server) updateStorefrontHandler(c *gin.Context) {
	userID := currentUserID(c)
	providerID := c.Param("id")

	var update models.StorefrontUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	provider, ok := s.state.providers[providerID]
	if !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}
	if update.Name != nil {
		provider.Name = *update.Name
	}
	if update.Bio != nil {
		provider.Bio = *update.Bio
	}
	if update.Location != nil {
		provider.Location = *update.Location
	}
	if update.CoverURL != nil {
		provider.CoverURL = *update.CoverURL
	}
	c.JSON(http.StatusOK, s.state.viewProvider(provider, userID))
}

func (s *Server) providerAnalyticsHandler(c *gin.Context) {
	providerID := c.Param("id")
	period := c.DefaultQuery("period", "30d")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.providers[providerID]; !ok {
		jsonError(c, http.StatusNotFound, "provider not found", "")
		return
	}

	analytics := models.ProviderAnalytics{
		ProviderID:   providerID,
		Period:       period,
		ProfileViews: 134,
		NewFollowers: len(s.state.follows[providerID]),
	}
	perService := map[string]*models.ServiceStat{}
	for _, b := range s.state.bookings {
		if b.ProviderID != providerID || b.Status == "cancelled" {
			continue
		}
		analytics.TotalBookings++
		analytics.Revenue += b.TotalPrice
		stat := perService[b.ServiceID]
		if stat == nil {
			stat = &models.ServiceStat{ServiceID: b.ServiceID, ServiceName: b.ServiceName}
			perService[b.ServiceID] = stat
		}
		stat.Bookings++
		stat.Revenue += b.TotalPrice
	}
	for _, stat := range perService {
		analytics.TopServices = append(analytics.TopServices, *stat)
	}
	sort.Slice(analytics.TopServices, func(i, j int) bool {
		return analytics.TopServices[i].Revenue > analytics.TopServices[j].Revenue
	})
	c.JSON(http.StatusOK, analytics)
}
