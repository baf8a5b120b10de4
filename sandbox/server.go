// Package sandbox is an in-process stand-in for the production GlowBook API.
// The demo runner and the client integration tests point the SDK at it so
// every flow is exercisable without the real backend.
package sandbox

import (
	"net/http"
	"time"

	"glowbook/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server hosts the sandbox API on a gin engine.
type Server struct {
	engine *gin.Engine
	state  *state
	secret []byte
	logger *zap.Logger
}

// New creates a seeded sandbox server.
func New(secret string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine: gin.New(),
		state:  seedState(),
		secret: []byte(secret),
		logger: logger,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(errorHandler(logger))
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	s.engine.Use(rateLimitMiddleware(logger, config.AppConfig.MaxRequestsPerMin))

	s.registerRoutes()
	return s
}

// Handler exposes the engine for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Sugar().Infof("sandbox: serving on %s", addr)
	return s.engine.Run(addr)
}
