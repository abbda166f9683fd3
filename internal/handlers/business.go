// internal/handlers/business.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type BusinessHandler struct {
	directoryService *services.DirectoryService
}

func NewBusinessHandler(directoryService *services.DirectoryService) *BusinessHandler {
	return &BusinessHandler{
		directoryService: directoryService,
	}
}

// GET /businesses
func (h *BusinessHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	filtered := h.directoryService.List(sess, params.Search, params.Category)

	start, end := utils.PageBounds(len(filtered), params)
	result := utils.CreatePaginationResult(filtered[start:end], int64(len(filtered)), params)

	utils.PaginatedResponse(c, result)
}

// POST /businesses
func (h *BusinessHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	listing, err := h.directoryService.Create(sess, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, listing)
}

// GET /businesses/discover
func (h *BusinessHandler) Discover(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequestResponse(c, "Query parameter 'q' is required", nil)
		return
	}

	listings := h.directoryService.Discover(c.Request.Context(), query)

	utils.SuccessResponse(c, listings)
}

// GET /businesses/reputation
func (h *BusinessHandler) Reputation(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.BadRequestResponse(c, "Query parameter 'name' is required", nil)
		return
	}

	mentions := h.directoryService.Reputation(c.Request.Context(), name)

	utils.SuccessResponse(c, mentions)
}
