package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type FinanceHandler struct {
	franchise *services.FranchiseService
}

func NewFinanceHandler(franchise *services.FranchiseService) *FinanceHandler {
	return &FinanceHandler{franchise: franchise}
}

// Simulate runs the season's books and the bankruptcy check
func (h *FinanceHandler) Simulate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Attendance     int `json:"attendance" binding:"required,min=0"`
		MarketingSpend int `json:"marketing_spend" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result, status, err := h.franchise.SimulateSeasonFinances(c.Request.Context(), id, engine.FinancialInput{
		Attendance:     req.Attendance,
		MarketingSpend: req.MarketingSpend,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"finances": result,
		"status":   status,
	})
}
