// internal/models/review.go
package models

// CategorizedPulse is the four-pillar community consensus breakdown, each
// axis scored 0-100 by the model.
type CategorizedPulse struct {
	Quality    float64 `json:"quality"`
	Durability float64 `json:"durability"`
	Value      float64 `json:"value"`
	Utility    float64 `json:"utility"`
}

type ReviewKeyword struct {
	Word      string           `json:"word"`
	Sentiment KeywordSentiment `json:"sentiment"`
}

// SocialComment is one user- or model-sourced review. Locally authored
// comments carry source "trustpulse" and live only in session state.
type SocialComment struct {
	ID              string            `json:"id,omitempty"`
	User            string            `json:"user"`
	Text            string            `json:"text"`
	Score           float64           `json:"score"`
	DetailedRating  *CategorizedPulse `json:"detailedRating,omitempty"`
	Date            string            `json:"date"`
	Source          ReviewSource      `json:"source"`
	SourceURL       string            `json:"sourceUrl,omitempty"`
	IsVerified      bool              `json:"isVerified,omitempty"`
	IsBuyer         bool              `json:"isBuyer,omitempty"`
	IsCollaboration bool              `json:"isCollaboration,omitempty"`
	VideoURL        string            `json:"videoUrl,omitempty"`
	Keywords        []ReviewKeyword   `json:"keywords,omitempty"`
	Replies         []SocialComment   `json:"replies,omitempty"`
}
