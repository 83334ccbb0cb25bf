package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/runera/runera-backend/internal/api/middleware"
	"github.com/runera/runera-backend/internal/auth"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authService auth.Service) {
	// Health check endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	// Wallet login
	router.POST("/auth/nonce", handler.IssueNonce)
	router.POST("/auth/connect", handler.Connect)

	// Runs: a token is optional, when present it must belong to the submitting wallet
	router.POST("/run/submit", middleware.OptionalAuth(authService), handler.SubmitRun)
	router.GET("/runs/:id", handler.GetRun)

	// Profiles (public read access)
	router.GET("/users/:address/profile", handler.GetUserProfile)

	// Events
	router.GET("/events", handler.ListEvents)
	router.GET("/events/:eventId/eligibility", handler.GetEventEligibility)
	router.POST("/events/:eventId/join", middleware.Auth(authService), handler.JoinEvent)
}
