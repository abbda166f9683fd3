// internal/handlers/chat.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustpulse/pulse-backend/internal/middleware"
	"github.com/trustpulse/pulse-backend/internal/services"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// POST /chat
func (h *ChatHandler) Send(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), sess, req.Message)
	if err != nil {
		utils.InternalErrorResponse(c, "The analyst is unavailable right now")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reply": reply,
	})
}

// DELETE /chat
func (h *ChatHandler) Reset(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	h.chatService.Reset(sess)

	utils.SuccessResponse(c, gin.H{
		"message": "Conversation reset",
	})
}
