// internal/services/classifier_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// ClassifierService decides whether free-text input asks about a specific
// product line or a brand entity. It is fail-open: any error defaults to the
// product branch so a classification hiccup never blocks a search.
type ClassifierService struct {
	ai *genai.Client
}

func NewClassifierService(ai *genai.Client) *ClassifierService {
	return &ClassifierService{ai: ai}
}

func (s *ClassifierService) Classify(ctx context.Context, query string) models.QueryType {
	prompt := fmt.Sprintf(`Classify query: %q.
If the user is asking about a specific model, version, flavor, scent, or product line (e.g. "Dior Homme", "iPhone 15", "Woody Dior"), respond "product".
If the user is asking about the company/entity broadly (e.g. "Dior", "Apple", "Nike"), respond "brand".
Respond ONLY: "product" or "brand".`, query)

	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents: []genai.Content{genai.UserText(prompt)},
	})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Query classification failed, defaulting to product")
		return models.QueryTypeProduct
	}

	if strings.Contains(strings.ToLower(strings.TrimSpace(resp.Text)), "brand") {
		return models.QueryTypeBrand
	}
	return models.QueryTypeProduct
}
