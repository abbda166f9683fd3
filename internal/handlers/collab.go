// internal/handlers/collab.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type CollabHandler struct {
	collabService *services.CollabService
}

func NewCollabHandler(collabService *services.CollabService) *CollabHandler {
	return &CollabHandler{
		collabService: collabService,
	}
}

// GET /collab/influencers
func (h *CollabHandler) Influencers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequestResponse(c, "Query parameter 'q' is required", nil)
		return
	}

	profiles := h.collabService.SearchInfluencers(c.Request.Context(), query)

	utils.SuccessResponse(c, profiles)
}

// POST /collab/matches
func (h *CollabHandler) Matches(c *gin.Context) {
	var req services.CollabSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	matches := h.collabService.FindMatches(c.Request.Context(), req.Query, req.Target)

	utils.SuccessResponse(c, matches)
}
