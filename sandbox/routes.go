package sandbox

// registerRoutes wires every sandbox endpoint. The paths mirror the
// production API surface the SDK talks to.
func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/health", s.healthHandler)

	auth := r.Group("/auth")
	{
		auth.POST("/login", s.loginHandler)
		auth.POST("/register", s.registerHandler)
		auth.POST("/logout", s.authRequired(), s.logoutHandler)
	}

	api := r.Group("", s.authRequired())
	{
		api.GET("/users/me", s.meHandler)

		api.GET("/feed", s.feedHandler)
		api.GET("/posts/:id", s.getPostHandler)
		api.POST("/posts/:id/like", s.likePostHandler)
		api.DELETE("/posts/:id/like", s.unlikePostHandler)
		api.GET("/posts/:id/comments", s.listCommentsHandler)
		api.POST("/posts/:id/comments", s.createCommentHandler)
		api.POST("/comments/:id/like", s.likeCommentHandler)
		api.DELETE("/comments/:id/like", s.unlikeCommentHandler)

		api.GET("/providers/search", s.searchProvidersHandler)
		api.GET("/providers/:id", s.getProviderHandler)
		api.POST("/providers/:id/follow", s.followProviderHandler)
		api.DELETE("/providers/:id/follow", s.unfollowProviderHandler)
		api.GET("/providers/:id/services", s.listServicesHandler)
		api.PATCH("/providers/:id", s.updateStorefrontHandler)
		api.GET("/providers/:id/analytics", s.providerAnalyticsHandler)

		api.POST("/bookings", s.createBookingHandler)
		api.GET("/bookings", s.listBookingsHandler)
		api.DELETE("/bookings/:id", s.cancelBookingHandler)
		api.GET("/bookings/availability/:providerId", s.availabilityHandler)

		api.GET("/promotions", s.listPromotionsHandler)
		api.POST("/promotions/redeem", s.redeemPromotionHandler)
		api.GET("/loyalty", s.loyaltyHandler)

		api.GET("/chats", s.listChatRoomsHandler)
		api.GET("/chats/:id/messages", s.listMessagesHandler)
		api.POST("/chats/:id/messages", s.sendMessageHandler)
	}
}
