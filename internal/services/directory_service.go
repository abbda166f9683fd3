// internal/services/directory_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

// DirectoryService manages the session-local business directory and the
// model-backed discovery/reputation lookups.
type DirectoryService struct {
	ai *genai.Client
}

type CreateListingRequest struct {
	BusinessName string `json:"businessName" validate:"required,min=2,max=120"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description" validate:"required,min=10"`
	Slogan       string `json:"slogan,omitempty"`
	Location     string `json:"location" validate:"required"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty" validate:"omitempty,url"`
	Phone        string `json:"phone,omitempty"`
	Contact      string `json:"contact,omitempty" validate:"omitempty,email"`
	Image        string `json:"image,omitempty"`
	Style        string `json:"style,omitempty"`
	Color        string `json:"color,omitempty"`
}

func NewDirectoryService(ai *genai.Client) *DirectoryService {
	return &DirectoryService{ai: ai}
}

// List returns the session's directory filtered by the search conjunction.
func (s *DirectoryService) List(sess *state.Session, term, category string) []models.BusinessListing {
	return FilterListings(sess.Businesses(), term, category)
}

// Create validates a creative-studio wizard submission and prepends the new
// listing to the session directory. Nothing leaves memory.
func (s *DirectoryService) Create(sess *state.Session, req *CreateListingRequest) (*models.BusinessListing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	listing := models.BusinessListing{
		ID:           uuid.NewString(),
		BusinessName: req.BusinessName,
		Category:     req.Category,
		Description:  req.Description,
		Slogan:       req.Slogan,
		Location:     req.Location,
		Address:      req.Address,
		Website:      req.Website,
		Phone:        req.Phone,
		Contact:      req.Contact,
		Image:        req.Image,
		Style:        req.Style,
		Color:        req.Color,
	}

	sess.PrependBusiness(listing)
	return &listing, nil
}

// Discover asks the model for local businesses matching a query. Any failure
// degrades to an empty directory, never an error.
func (s *DirectoryService) Discover(ctx context.Context, query string) []models.BusinessListing {
	prompt := fmt.Sprintf("Find local businesses or services for: %q.", query)

	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		Schema:     businessListingSchema(),
		UseSearch:  true,
	})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Business discovery failed")
		return []models.BusinessListing{}
	}

	var listings []models.BusinessListing
	if outcome := decodeInsight(resp.Text, businessListingSchema(), &listings); !outcome.HasResult() {
		logrus.WithFields(logrus.Fields{
			"query":   query,
			"failure": outcome.Failure,
			"reason":  outcome.Reason,
		}).Warn("Business discovery returned unusable payload")
		return []models.BusinessListing{}
	}
	return listings
}

// Reputation fetches recent reviews for a named business. Failure degrades
// to an empty list.
func (s *DirectoryService) Reputation(ctx context.Context, businessName string) []models.SocialComment {
	prompt := fmt.Sprintf("Find recent reviews and reputation data for %q.", businessName)

	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		Schema:     reputationSchema(),
		UseSearch:  true,
	})
	if err != nil {
		logrus.WithError(err).WithField("business", businessName).Warn("Reputation lookup failed")
		return []models.SocialComment{}
	}

	var comments []models.SocialComment
	if err := json.Unmarshal([]byte(resp.Text), &comments); err != nil {
		logrus.WithError(err).WithField("business", businessName).Warn("Reputation payload unparseable")
		return []models.SocialComment{}
	}
	return comments
}
