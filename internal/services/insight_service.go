// internal/services/insight_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
	"github.com/trustpulse/pulse-backend/internal/state"
)

// InsightService runs the search pipeline: classify the query, fetch the
// matching insight record with a declared response schema, validate it, and
// commit it to session state. Every failure mode at the model boundary
// collapses to an empty result for the client; the distinction survives only
// in the logs and the FetchOutcome.
type InsightService struct {
	ai         *genai.Client
	classifier *ClassifierService
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// SearchResult is what a completed search renders from. Exactly one of
// Product/Brand is set when Status is ok.
type SearchResult struct {
	Query        string                                           `json:"query"`
	Type         models.QueryType                                 `json:"type"`
	Status       models.FetchStatus                               `json:"status"`
	Product      *models.ProductInsight                           `json:"product,omitempty"`
	Brand        *models.BrandInsight                             `json:"brand,omitempty"`
	StyleBuckets map[models.StyleCategory][]models.SimilarProduct `json:"styleBuckets,omitempty"`
	Stale        bool                                             `json:"stale,omitempty"`
}

func NewInsightService(ai *genai.Client, classifier *ClassifierService) *InsightService {
	return &InsightService{
		ai:         ai,
		classifier: classifier,
	}
}

// Search runs the full pipeline for one user-initiated query. The sequence
// number taken at the start guards the commit: if a newer search began while
// this one was in flight, the result is discarded and flagged stale.
func (s *InsightService) Search(ctx context.Context, sess *state.Session, query string) *SearchResult {
	seq := sess.BeginSearch()

	queryType := s.classifier.Classify(ctx, query)

	result := &SearchResult{
		Query: query,
		Type:  queryType,
	}

	switch queryType {
	case models.QueryTypeBrand:
		insight, outcome := s.FetchBrandInsight(ctx, query)
		result.Status = outcome.Status
		if outcome.HasResult() {
			if !sess.CommitBrand(seq, insight) {
				result.Stale = true
				return result
			}
			result.Brand = insight
		}
	default:
		insight, outcome := s.FetchProductInsight(ctx, query)
		result.Status = outcome.Status
		if outcome.HasResult() {
			if !sess.CommitProduct(seq, insight) {
				result.Stale = true
				return result
			}
			result.Product = insight
			result.StyleBuckets = BucketByStyle(insight.SimilarProducts)
		}
	}

	return result
}

// FetchProductInsight requests a product report. A record without a name is
// "no result", not a parse failure; the caller renders the idle state.
func (s *InsightService) FetchProductInsight(ctx context.Context, query string) (*models.ProductInsight, models.FetchOutcome) {
	prompt := fmt.Sprintf(`ACT AS A HIGH-SPEED DATA EXTRACTOR.
TARGET: %q

CORE TASK:
1. REVIEWS: Extract as many unique, organic user reviews as possible (MAX 10 per category) for: 'topRelevantReviews', 'topPositiveReviews', and 'topNegativeReviews'.
2. MIXED SOURCES: You MUST find and include reviews from Amazon, eBay, Pinterest, Reddit, and Google. Map the 'source' field correctly.
3. PRICING: Find current market prices from at least 3 distinct retailers, best value first.
4. CATEGORIZED PULSE: Score Quality, Durability, Value, and Utility from 0-100 based on community consensus.
5. ATTRIBUTES: If this is a fragrance/scent, include 'notes' in specifications. If food, include nutrition.

OUTPUT: Valid JSON only. Do not provide markdown commentary.`, query)

	schema := productInsightSchema()
	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		Schema:     schema,
		UseSearch:  true,
	})
	if err != nil {
		return nil, s.failed("product", query, err)
	}

	var insight models.ProductInsight
	outcome := decodeInsight(resp.Text, schema, &insight)
	if !outcome.HasResult() {
		s.logOutcome("product", query, outcome)
		return nil, outcome
	}

	if insight.Name == "" {
		return nil, models.OutcomeEmpty()
	}
	return &insight, models.OutcomeOK()
}

// FetchBrandInsight requests a brand audit. The same validity gate as the
// product path applies: a payload without a brandName is an empty result.
func (s *InsightService) FetchBrandInsight(ctx context.Context, query string) (*models.BrandInsight, models.FetchOutcome) {
	prompt := fmt.Sprintf("Quick Brand Pulse Audit for: %q. Return data in JSON format.", query)

	schema := brandInsightSchema()
	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents:   []genai.Content{genai.UserText(prompt)},
		JSONOutput: true,
		Schema:     schema,
		UseSearch:  true,
	})
	if err != nil {
		return nil, s.failed("brand", query, err)
	}

	var insight models.BrandInsight
	outcome := decodeInsight(resp.Text, schema, &insight)
	if !outcome.HasResult() {
		s.logOutcome("brand", query, outcome)
		return nil, outcome
	}

	if insight.BrandName == "" {
		return nil, models.OutcomeEmpty()
	}
	return &insight, models.OutcomeOK()
}

// decodeInsight parses the model's text into v, checking the payload against
// the declared schema first so a shape drift surfaces as a schema failure
// instead of a half-populated struct.
func decodeInsight(text string, schema *genai.Schema, v interface{}) models.FetchOutcome {
	if text == "" {
		return models.OutcomeEmpty()
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return models.OutcomeFailed(models.FailureKindParse, err.Error())
	}
	if err := schema.Validate(raw); err != nil {
		return models.OutcomeFailed(models.FailureKindSchema, err.Error())
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return models.OutcomeFailed(models.FailureKindParse, err.Error())
	}
	return models.OutcomeOK()
}

func (s *InsightService) failed(path, query string, err error) models.FetchOutcome {
	kind := models.FailureKindNetwork
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		kind = models.FailureKindStatus
	}
	outcome := models.OutcomeFailed(kind, err.Error())
	s.logOutcome(path, query, outcome)
	return outcome
}

func (s *InsightService) logOutcome(path, query string, outcome models.FetchOutcome) {
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"query":   query,
		"status":  outcome.Status,
		"failure": outcome.Failure,
		"reason":  outcome.Reason,
	}).Warn("Insight fetch did not produce a result")
}
