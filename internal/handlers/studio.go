// internal/handlers/studio.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

// StudioHandler serves the creative tooling. Generation failures are not
// errors to the client: the response is a success with a null image so the
// caller can fall back gracefully.
type StudioHandler struct {
	studioService *services.StudioService
}

func NewStudioHandler(studioService *services.StudioService) *StudioHandler {
	return &StudioHandler{
		studioService: studioService,
	}
}

// POST /studio/assets
func (h *StudioHandler) GenerateAsset(c *gin.Context) {
	var req services.GenerateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	image := h.studioService.GenerateAsset(c.Request.Context(), req.Prompt, req.AssetType)

	utils.SuccessResponse(c, gin.H{
		"image": nullableImage(image),
	})
}

// POST /studio/tryon
func (h *StudioHandler) TryOn(c *gin.Context) {
	var req services.TryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	image := h.studioService.TryOn(c.Request.Context(), &req)

	utils.SuccessResponse(c, gin.H{
		"image": nullableImage(image),
	})
}

// POST /studio/measure
func (h *StudioHandler) Measure(c *gin.Context) {
	var req services.MeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	estimate := h.studioService.EstimateMeasurement(c.Request.Context(), &req)

	utils.SuccessResponse(c, gin.H{
		"estimate": estimate,
	})
}

func nullableImage(dataURL string) interface{} {
	if dataURL == "" {
		return nil
	}
	return dataURL
}
