// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// POST /reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.Submit(sess, &req)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			utils.UnauthorizedResponse(c, "Sign in to post a review")
			return
		}
		if errors.Is(err, services.ErrVerificationRequired) {
			utils.ForbiddenResponse(c, "Only verified accounts can post reviews")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, review)
}

// GET /reviews
func (h *ReviewHandler) Tabs(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, h.reviewService.Tabs(sess))
}
