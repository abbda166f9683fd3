// internal/models/brand.go
package models

// BrandInsight is the canonical report for a brand entity, the broad-query
// counterpart of ProductInsight.
type BrandInsight struct {
	BrandName        string            `json:"brandName"`
	LogoURL          string            `json:"logoUrl,omitempty"`
	Industry         string            `json:"industry"`
	Description      string            `json:"description"`
	Email            string            `json:"email,omitempty"`
	Mission          string            `json:"mission,omitempty"`
	MarketTrustScore float64           `json:"marketTrustScore"`
	ProductCatalog   []CatalogItem     `json:"productCatalog"`
	Services         []BrandService    `json:"services,omitempty"`
	Events           []PulseEvent      `json:"events,omitempty"`
	InfluencerPulse  []InfluencerQuote `json:"influencerPulse,omitempty"`
	WebMentions      []SocialComment   `json:"webMentions"`
}

type CatalogItem struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	PriceRange string  `json:"priceRange,omitempty"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	TrustPulse float64 `json:"trustPulse"`
}

type BrandService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange,omitempty"`
}

type InfluencerQuote struct {
	Name   string  `json:"name"`
	Handle string  `json:"handle"`
	Quote  string  `json:"quote"`
	Score  float64 `json:"score"`
}
