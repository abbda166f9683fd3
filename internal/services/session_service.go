// internal/services/session_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trustpulse/pulse-backend/internal/config"
	"github.com/trustpulse/pulse-backend/internal/models"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

// SessionService issues and tears down the mock sessions. There are no
// credentials and nothing is checked against any backend; signing in just
// mints an identity for the lifetime of the tab. Provider google/facebook
// marks the user verified, guest does not.
type SessionService struct {
	store *state.Store
	cfg   *config.Config
}

type LoginRequest struct {
	Name     string               `json:"name" validate:"required,min=1,max=80"`
	Email    string               `json:"email" validate:"omitempty,email"`
	Provider models.LoginProvider `json:"provider" validate:"required,login_provider"`
}

type CreatorApplyRequest struct {
	Role string `json:"role" validate:"required,oneof=blogger influencer"`
}

type SessionResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewSessionService(store *state.Store, cfg *config.Config) *SessionService {
	return &SessionService{
		store: store,
		cfg:   cfg,
	}
}

func (s *SessionService) Login(req *LoginRequest) (*SessionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sessionID := uuid.NewString()
	user := &models.User{
		ID:         sessionID,
		Name:       req.Name,
		Email:      req.Email,
		Provider:   req.Provider,
		IsVerified: req.Provider != models.LoginProviderGuest,
	}

	sess := s.store.Create(sessionID)
	sess.SetUser(user)

	token, err := utils.GenerateSessionToken(
		sessionID, user.Name, string(user.Provider),
		user.IsVerified, user.IsBlogger, user.IsInfluencer,
		s.cfg.Session.TTLHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &SessionResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.Session.TTLHours * 3600,
	}, nil
}

func (s *SessionService) Logout(sess *state.Session) {
	sess.ClearUser()
	s.store.Delete(sess.ID())
}

// ApplyCreator upgrades the session identity to blogger or influencer
// status. Approval is instant and mock, like everything else about the
// session; a fresh token is issued because the capability flags ride in the
// claims.
func (s *SessionService) ApplyCreator(sess *state.Session, req *CreatorApplyRequest) (*SessionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := sess.User()
	if user == nil {
		return nil, errors.New("no signed-in user in session")
	}

	switch req.Role {
	case "influencer":
		user.IsInfluencer = true
		user.IsCreator = true
		user.InfluenceScore = 82
	default:
		user.IsBlogger = true
		user.IsCreator = true
	}

	sess.SetUser(user)

	token, err := utils.GenerateSessionToken(
		sess.ID(), user.Name, string(user.Provider),
		user.IsVerified, user.IsBlogger, user.IsInfluencer,
		s.cfg.Session.TTLHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &SessionResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.Session.TTLHours * 3600,
	}, nil
}
