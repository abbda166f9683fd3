// internal/models/insight.go
package models

// ProductInsight is the canonical report for a specific product or product
// line, returned fully formed by the model. It is treated as an immutable
// view model once fetched; the only derived data (style buckets, merged
// review tabs) is recomputed from it, never written back.
type ProductInsight struct {
	Name                 string              `json:"name"`
	Category             string              `json:"category"`
	IsConsumable         bool                `json:"isConsumable"`
	Description          string              `json:"description"`
	PriceComparison      []PricePoint        `json:"priceComparison"`
	ProductTiers         []ProductTier       `json:"productTiers,omitempty"`
	BudgetAlternatives   []BudgetAlternative `json:"budgetAlternatives,omitempty"`
	Sentiment            SentimentStats      `json:"sentiment"`
	CategorizedPulse     *CategorizedPulse   `json:"categorizedPulse,omitempty"`
	NutritionalFacts     *NutritionalFacts   `json:"nutritionalFacts,omitempty"`
	Recipes              []Recipe            `json:"recipes,omitempty"`
	Pairings             []string            `json:"pairings,omitempty"`
	TopRelevantReviews   []SocialComment     `json:"topRelevantReviews"`
	TopPositiveReviews   []SocialComment     `json:"topPositiveReviews"`
	TopNegativeReviews   []SocialComment     `json:"topNegativeReviews"`
	InfluencerReviews    []InfluencerReview  `json:"influencerReviews"`
	SimilarProducts      []SimilarProduct    `json:"similarProducts"`
	Specifications       []ProductSpec       `json:"specifications,omitempty"`
	Events               []PulseEvent        `json:"events,omitempty"`
	VideoReviews         []string            `json:"videoReviews"`
	BrandScore           float64             `json:"brandScore"`
	TotalVerifiedReviews int                 `json:"totalVerifiedReviews,omitempty"`
	LastPriceRefresh     string              `json:"lastPriceRefresh,omitempty"`
}

// PricePoint is one retailer offer. The presentation layer treats index 0 as
// the best value; the model is asked for that ordering but it is not
// re-sorted here.
type PricePoint struct {
	Store         string `json:"store"`
	Price         string `json:"price"`
	Link          string `json:"link"`
	Availability  bool   `json:"availability"`
	PreviousPrice string `json:"previousPrice,omitempty"`
	LastUpdated   string `json:"lastUpdated,omitempty"`
}

type SentimentHistoryPoint struct {
	Date     string  `json:"date"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	NetScore float64 `json:"netScore,omitempty"`
}

type SentimentStats struct {
	Positive             float64                 `json:"positive"`
	Neutral              float64                 `json:"neutral"`
	Negative             float64                 `json:"negative"`
	AverageRating        float64                 `json:"averageRating"`
	TotalReviewsAnalyzed int                     `json:"totalReviewsAnalyzed"`
	History              []SentimentHistoryPoint `json:"history,omitempty"`
}

type SimilarProduct struct {
	Name          string        `json:"name"`
	ImageURL      string        `json:"imageUrl"`
	PriceEstimate string        `json:"priceEstimate,omitempty"`
	Details       string        `json:"details,omitempty"`
	StyleCategory StyleCategory `json:"styleCategory"`
}

type BudgetAlternative struct {
	Store    string `json:"store"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Link     string `json:"link"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type ProductTier struct {
	Tier   ProductTierLevel `json:"tier"`
	Name   string           `json:"name"`
	Price  string           `json:"price"`
	Reason string           `json:"reason"`
	Link   string           `json:"link"`
	Store  string           `json:"store"`
	Image  string           `json:"image"`
}

type ProductSpec struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Category string `json:"category,omitempty"`
}

type NutritionalFacts struct {
	Calories       string       `json:"calories,omitempty"`
	Macros         []LabelValue `json:"macros,omitempty"`
	HealthBenefits []string     `json:"healthBenefits"`
	HealthWarnings []string     `json:"healthWarnings"`
}

type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Recipe struct {
	Title       string   `json:"title"`
	Servings    string   `json:"servings,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type PulseEvent struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Date                 string        `json:"date"`
	Platform             EventPlatform `json:"platform"`
	Link                 string        `json:"link"`
	Description          string        `json:"description"`
	Status               EventStatus   `json:"status"`
	RecommendationReason string        `json:"recommendationReason"`
}

type InfluencerReview struct {
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar,omitempty"`
	Platform   string  `json:"platform"`
	Content    string  `json:"content"`
	TrustScore float64 `json:"trustScore"`
	VideoURL   string  `json:"videoUrl,omitempty"`
}
