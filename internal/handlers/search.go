// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type SearchHandler struct {
	insightService *services.InsightService
}

func NewSearchHandler(insightService *services.InsightService) *SearchHandler {
	return &SearchHandler{
		insightService: insightService,
	}
}

// POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result := h.insightService.Search(c.Request.Context(), sess, req.Query)

	utils.SuccessResponse(c, result)
}

// GET /search/current
func (h *SearchHandler) Current(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	product, brand := sess.CurrentInsight()

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"brand":   brand,
	})
}
