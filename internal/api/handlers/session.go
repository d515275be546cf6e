package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession starts a new franchise save game
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		FranchiseName string `json:"franchise_name" binding:"required,min=2,max=60"`
		CityName      string `json:"city_name" binding:"required,min=2,max=60"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	session, err := h.sessions.CreateSession(middleware.UserID(c), req.FranchiseName, req.CityName, gamedata.DefaultTiers())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, session)
}

// ListSessions returns the caller's save games
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.ListSessions(middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, sessions)
}

// GetSession returns one save game with its full state snapshot
func (h *SessionHandler) GetSession(c *gin.Context) {
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
		"session": session,
		"state":   state,
	})
}

// DeleteSession removes a save game and its history
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.DeleteSession(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"deleted": id})
}

// GetSeasonHistory returns a session's archived seasons
func (h *SessionHandler) GetSeasonHistory(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	archives, err := h.sessions.GetSeasonHistory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SendSuccess(c, archives)
}
