// internal/services/chat_service.go
package services

import (
	"context"
	"fmt"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/state"
)

const chatPersona = "You are TrustPulse AI, a world-class senior market and nutrition analyst."

// ChatService runs the per-session analyst conversation. The REST endpoint
// is stateless, so the transcript lives in session state and is replayed
// with every turn; the observable contract is still "append one user
// message, get one assistant reply".
type ChatService struct {
	ai *genai.Client
}

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

func NewChatService(ai *genai.Client) *ChatService {
	return &ChatService{ai: ai}
}

// Send appends the user message to the conversation and returns the single
// assistant reply. The turn is committed to the transcript only when the
// model answered, so a failed call leaves the conversation unchanged.
func (s *ChatService) Send(ctx context.Context, sess *state.Session, message string) (string, error) {
	userMsg := genai.UserText(message)
	contents := append(sess.ChatHistory(), userMsg)

	resp, err := s.ai.Generate(ctx, genai.Request{
		System:   chatPersona,
		Contents: contents,
	})
	if err != nil {
		return "", fmt.Errorf("chat turn failed: %w", err)
	}

	sess.AppendChatTurn(userMsg, genai.ModelText(resp.Text))
	return resp.Text, nil
}

// Reset starts a fresh conversation with the same persona.
func (s *ChatService) Reset(sess *state.Session) {
	sess.ResetChat()
}
