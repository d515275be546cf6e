package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type TrainingHandler struct {
	franchise *services.FranchiseService
}

func NewTrainingHandler(franchise *services.FranchiseService) *TrainingHandler {
	return &TrainingHandler{franchise: franchise}
}

// Simulate runs a training block for the whole roster. Progress streams
// over the websocket; the response carries the final batch result.
func (h *TrainingHandler) Simulate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Games int `json:"games" binding:"omitempty,min=1,max=200"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Invalid request body", err.Error())
			return
		}
	}

	batch, err := h.franchise.RunTrainingCamp(c.Request.Context(), id, req.Games)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, batch)
}
