package api

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/api/handlers"
	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, sessions *services.SessionService, franchise *services.FranchiseService, cfg *config.Config) {
	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessions)
	draftHandler := handlers.NewDraftHandler(franchise)
	trainingHandler := handlers.NewTrainingHandler(franchise)
	financeHandler := handlers.NewFinanceHandler(franchise)
	franchiseHandler := handlers.NewFranchiseHandler(franchise, sessions)

	simLimiter := middleware.NewSimRateLimiter(cfg.SimRatePerMinute)

	auth := middleware.OptionalAuth(cfg.JWTSecret)

	// Session management
	group.POST("/sessions", auth, sessionHandler.CreateSession)
	group.GET("/sessions", auth, sessionHandler.ListSessions)
	group.GET("/sessions/:id", auth, sessionHandler.GetSession)
	group.DELETE("/sessions/:id", auth, sessionHandler.DeleteSession)
	group.GET("/sessions/:id/history", auth, sessionHandler.GetSeasonHistory)

	// Draft flow
	group.POST("/sessions/:id/draft/class", auth, simLimiter.Middleware(), draftHandler.GenerateClass)
	group.GET("/sessions/:id/draft/class", auth, draftHandler.GetClass)
	group.POST("/sessions/:id/draft/scout", auth, draftHandler.Scout)
	group.GET("/sessions/:id/draft/order", auth, draftHandler.GetOrder)
	group.POST("/sessions/:id/draft/ai-picks", auth, simLimiter.Middleware(), draftHandler.SimulateAIPicks)
	group.POST("/sessions/:id/draft/pick", auth, draftHandler.MakePick)

	// Season simulation
	group.POST("/sessions/:id/training/simulate", auth, simLimiter.Middleware(), trainingHandler.Simulate)
	group.POST("/sessions/:id/finance/simulate", auth, simLimiter.Middleware(), financeHandler.Simulate)

	// Franchise progression
	group.GET("/sessions/:id/franchise/promotion", auth, franchiseHandler.PromotionStatus)
	group.GET("/sessions/:id/franchise/status", auth, franchiseHandler.Status)
	group.POST("/sessions/:id/offseason/rollover", auth, simLimiter.Middleware(), franchiseHandler.Offseason)
}
