// internal/services/collab_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// CollabService covers the influencer hub: expert discovery and
// brand/influencer matchmaking. Both lookups degrade to empty slices on any
// failure.
type CollabService struct {
	ai *genai.Client
}

type CollabSearchRequest struct {
	Query  string              `json:"query" validate:"required,min=1"`
	Target models.CollabTarget `json:"target" validate:"required,oneof=influencers brands"`
}

func NewCollabService(ai *genai.Client) *CollabService {
	return &CollabService{ai: ai}
}

// SearchInfluencers finds the top experts or food bloggers for a category.
func (s *CollabService) SearchInfluencers(ctx context.Context, query string) []models.InfluencerProfile {
	prompt := fmt.Sprintf("Identify top 5 influencers or food bloggers for category: %q.", query)

	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		UseSearch:  true,
	})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Influencer search failed")
		return []models.InfluencerProfile{}
	}

	var profiles []models.InfluencerProfile
	if err := json.Unmarshal([]byte(resp.Text), &profiles); err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Influencer payload unparseable")
		return []models.InfluencerProfile{}
	}
	return profiles
}

// FindMatches looks for collaboration candidates of the requested target
// type.
func (s *CollabService) FindMatches(ctx context.Context, query string, target models.CollabTarget) []models.CollabMatch {
	prompt := fmt.Sprintf("Find potential collaboration matches for: %q. Target Type: %s.", query, target)

	schema := collabMatchSchema()
	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		Schema:     schema,
		UseSearch:  true,
	})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Collab match search failed")
		return []models.CollabMatch{}
	}

	var matches []models.CollabMatch
	if outcome := decodeInsight(resp.Text, schema, &matches); !outcome.HasResult() {
		logrus.WithFields(logrus.Fields{
			"query":   query,
			"failure": outcome.Failure,
			"reason":  outcome.Reason,
		}).Warn("Collab match payload unusable")
		return []models.CollabMatch{}
	}
	return matches
}
