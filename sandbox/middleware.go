package sandbox

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// errorResponse is the sandbox's uniform error body.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// errorHandler catches panics and returns a structured 500.
func errorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("sandbox: unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, errorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// jsonError sends a standardized JSON error response.
func jsonError(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, errorResponse{Message: message, Details: details})
}

// rateLimiterStore holds a map of client IPs to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	perMin   int
	mu       sync.Mutex
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// rateLimitMiddleware limits requests per client IP.
func rateLimitMiddleware(logger *zap.Logger, perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		perMin = 200
	}
	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter), perMin: perMin}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			logger.Warn("sandbox: rate limit exceeded", zap.String("ip", ip))
			jsonError(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.", "")
			return
		}
		c.Next()
	}
}

// authRequired validates the bearer token and stores the caller's user id in
// the gin context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			jsonError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString, s.secret)
		if err != nil || userID == "" {
			jsonError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	id, _ := c.Get("userID")
	userID, _ := id.(string)
	return userID
}
