package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

// respondServiceError maps service-layer failures onto the response
// envelope. Domain outcomes (broke, out of turn, bankrupt) are conflicts;
// anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.SendNotFound(c, "Session not found")
	case errors.Is(err, services.ErrProspectNotFound):
		utils.SendNotFound(c, "Prospect not found")
	case errors.Is(err, services.ErrInsufficientFunds):
		utils.SendConflict(c, err.Error())
	case errors.Is(err, services.ErrProspectDrafted):
		utils.SendConflict(c, "Prospect has already been drafted")
	case errors.Is(err, services.ErrNotPlayersTurn):
		utils.SendConflict(c, "It is not your pick")
	case errors.Is(err, services.ErrGameOver):
		utils.SendConflict(c, "This franchise has gone bankrupt")
	default:
		utils.SendInternalError(c, err.Error())
	}
}

// sessionID parses the :id path parameter
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid session ID", err.Error())
		return uuid.Nil, false
	}
	return id, true
}
