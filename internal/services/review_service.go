// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trustpulse/pulse-backend/internal/models"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

// ErrLoginRequired is returned when an anonymous session tries to submit a
// review; the handler turns it into a login prompt, not an error banner.
// ErrVerificationRequired is its counterpart for guest identities.
var (
	ErrLoginRequired        = errors.New("login required")
	ErrVerificationRequired = errors.New("verified account required")
)

// ReviewService handles locally authored reviews and the merged tab views.
// Local reviews are session memory only; they are never sent anywhere and
// vanish with the session.
type ReviewService struct{}

type SubmitReviewRequest struct {
	Text            string                   `json:"text" validate:"required,min=3"`
	Score           float64                  `json:"score" validate:"required,min=1,max=5"`
	DetailedRating  *models.CategorizedPulse `json:"detailedRating,omitempty"`
	IsCollaboration bool                     `json:"isCollaboration,omitempty"`
}

// ReviewTabs is the shaped review view: the relevant tab merges local
// submissions ahead of fetched reviews; positive and negative are fetched
// data only.
type ReviewTabs struct {
	Relevant      []models.SocialComment `json:"relevant"`
	Positive      []models.SocialComment `json:"positive"`
	Negative      []models.SocialComment `json:"negative"`
	TotalAnalyzed int                    `json:"totalAnalyzed,omitempty"`
}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// Submit validates the review at the boundary and prepends it to the
// session's local list. Only a verified signed-in user may post; this is the
// one class of error that is prevented rather than tolerated.
func (s *ReviewService) Submit(sess *state.Session, req *SubmitReviewRequest) (*models.SocialComment, error) {
	user := sess.User()
	if user == nil {
		return nil, ErrLoginRequired
	}
	if !user.IsVerified {
		return nil, ErrVerificationRequired
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	review := models.SocialComment{
		ID:              uuid.NewString(),
		User:            user.Name,
		Text:            req.Text,
		Score:           req.Score,
		DetailedRating:  req.DetailedRating,
		Date:            time.Now().Format("2006-01-02"),
		Source:          models.ReviewSourceTrustPulse,
		IsVerified:      user.IsVerified,
		IsBuyer:         true,
		IsCollaboration: req.IsCollaboration,
	}

	sess.PrependReview(review)
	return &review, nil
}

// Tabs assembles the three review tabs from the current product insight and
// the session's local reviews. With no insight loaded, only local
// submissions appear in the relevant tab.
func (s *ReviewService) Tabs(sess *state.Session) ReviewTabs {
	tabs := ReviewTabs{
		Relevant: []models.SocialComment{},
		Positive: []models.SocialComment{},
		Negative: []models.SocialComment{},
	}

	local := sess.LocalReviews()
	product, _ := sess.CurrentInsight()
	if product != nil {
		tabs.Relevant = MergeReviews(local, product.TopRelevantReviews)
		tabs.Positive = append(tabs.Positive, product.TopPositiveReviews...)
		tabs.Negative = append(tabs.Negative, product.TopNegativeReviews...)
		tabs.TotalAnalyzed = product.TotalVerifiedReviews
	} else {
		tabs.Relevant = MergeReviews(local, nil)
	}

	return tabs
}
