package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type FranchiseHandler struct {
	franchise *services.FranchiseService
	sessions  *services.SessionService
}

func NewFranchiseHandler(franchise *services.FranchiseService, sessions *services.SessionService) *FranchiseHandler {
	return &FranchiseHandler{franchise: franchise, sessions: sessions}
}

// PromotionStatus evaluates the tier-climb requirements for a session
func (h *FranchiseHandler) PromotionStatus(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	eligibility, err := h.franchise.GetPromotionStatus(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, eligibility)
}

// Status returns the franchise's survival state and season position
func (h *FranchiseHandler) Status(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessions.GetSession(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	state, err := session.DecodeState()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"status":      session.Status,
		"season":      session.Season,
		"tier":        state.Franchise.Tier,
		"reserves":    state.Franchise.Reserves,
		"record":      state.Record,
		"roster_size": len(state.Roster),
		"pride":       state.City.Pride,
	})
}

// Offseason runs the end-of-season rollover
func (h *FranchiseHandler) Offseason(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.franchise.RunOffseason(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, result)
}
