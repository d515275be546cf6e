package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stitts-dev/franchise-sim/internal/models"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type DraftHandler struct {
	franchise *services.FranchiseService
}

func NewDraftHandler(franchise *services.FranchiseService) *DraftHandler {
	return &DraftHandler{franchise: franchise}
}

// GenerateClass creates the annual draft class for a session
func (h *DraftHandler) GenerateClass(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	prospects, err := h.franchise.GenerateDraftClass(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccessWithMeta(c, prospects, &utils.Meta{Total: int64(len(prospects))})
}

// GetClass returns the current prospect pool
func (h *DraftHandler) GetClass(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	prospects, err := h.franchise.GetDraftClass(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccessWithMeta(c, prospects, &utils.Meta{Total: int64(len(prospects))})
}

// Scout spends budget on a scouting report for one prospect
func (h *DraftHandler) Scout(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		ProspectID string `json:"prospect_id" binding:"required,uuid"`
		Accuracy   string `json:"accuracy" binding:"required,oneof=low medium high"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	prospectID, err := uuid.Parse(req.ProspectID)
	if err != nil {
		utils.SendValidationError(c, "Invalid prospect ID", err.Error())
		return
	}

	report, err := h.franchise.ScoutProspect(c.Request.Context(), id, prospectID, models.AccuracyTier(req.Accuracy))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, report)
}

// GetOrder returns the draft order and current pick position
func (h *DraftHandler) GetOrder(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	draft, err := h.franchise.GetDraftOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, draft)
}

// SimulateAIPicks advances the draft to the player's next slot
func (h *DraftHandler) SimulateAIPicks(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	picks, draft, err := h.franchise.SimulateAIPicks(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"picks": picks,
		"draft": draft,
	})
}

// MakePick executes the player's selection
func (h *DraftHandler) MakePick(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req struct {
		ProspectID string `json:"prospect_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	prospectID, err := uuid.Parse(req.ProspectID)
	if err != nil {
		utils.SendValidationError(c, "Invalid prospect ID", err.Error())
		return
	}

	rookie, err := h.franchise.MakePlayerPick(c.Request.Context(), id, prospectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, rookie)
}
