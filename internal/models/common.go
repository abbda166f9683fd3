// internal/models/common.go
package models

// Enums

type QueryType string

const (
	QueryTypeProduct QueryType = "product"
	QueryTypeBrand   QueryType = "brand"
)

type ReviewSource string

const (
	ReviewSourceReddit      ReviewSource = "reddit"
	ReviewSourceGoogle      ReviewSource = "google"
	ReviewSourceTrustPulse  ReviewSource = "trustpulse"
	ReviewSourceInternet    ReviewSource = "internet"
	ReviewSourceYouTube     ReviewSource = "youtube"
	ReviewSourceWebsite     ReviewSource = "website"
	ReviewSourceYelp        ReviewSource = "yelp"
	ReviewSourceUberEats    ReviewSource = "ubereats"
	ReviewSourceTripAdvisor ReviewSource = "tripadvisor"
	ReviewSourceAmazon      ReviewSource = "amazon"
	ReviewSourceEbay        ReviewSource = "ebay"
	ReviewSourcePinterest   ReviewSource = "pinterest"
)

var reviewSources = map[ReviewSource]bool{
	ReviewSourceReddit:      true,
	ReviewSourceGoogle:      true,
	ReviewSourceTrustPulse:  true,
	ReviewSourceInternet:    true,
	ReviewSourceYouTube:     true,
	ReviewSourceWebsite:     true,
	ReviewSourceYelp:        true,
	ReviewSourceUberEats:    true,
	ReviewSourceTripAdvisor: true,
	ReviewSourceAmazon:      true,
	ReviewSourceEbay:        true,
	ReviewSourcePinterest:   true,
}

func (s ReviewSource) IsValid() bool {
	return reviewSources[s]
}

// ReviewSourceValues returns the closed set of platform tags, used both for
// request validation and for the response schema sent to the model.
func ReviewSourceValues() []string {
	return []string{
		string(ReviewSourceReddit), string(ReviewSourceGoogle), string(ReviewSourceTrustPulse),
		string(ReviewSourceInternet), string(ReviewSourceYouTube), string(ReviewSourceWebsite),
		string(ReviewSourceYelp), string(ReviewSourceUberEats), string(ReviewSourceTripAdvisor),
		string(ReviewSourceAmazon), string(ReviewSourceEbay), string(ReviewSourcePinterest),
	}
}

type StyleCategory string

const (
	StyleCategoryLuxury     StyleCategory = "Luxury"
	StyleCategoryComfort    StyleCategory = "Comfort"
	StyleCategoryAesthetics StyleCategory = "Aesthetics"
	StyleCategoryCasual     StyleCategory = "Casual"
)

// StyleCategories is the fixed bucket order used for display grouping.
var StyleCategories = []StyleCategory{
	StyleCategoryLuxury,
	StyleCategoryComfort,
	StyleCategoryAesthetics,
	StyleCategoryCasual,
}

func (c StyleCategory) IsValid() bool {
	switch c {
	case StyleCategoryLuxury, StyleCategoryComfort, StyleCategoryAesthetics, StyleCategoryCasual:
		return true
	}
	return false
}

type LoginProvider string

const (
	LoginProviderGoogle   LoginProvider = "google"
	LoginProviderFacebook LoginProvider = "facebook"
	LoginProviderGuest    LoginProvider = "guest"
)

type ProductTierLevel string

const (
	ProductTierHighEnd  ProductTierLevel = "High-End"
	ProductTierMidRange ProductTierLevel = "Mid-Range"
	ProductTierBudget   ProductTierLevel = "Budget"
)

type EventPlatform string

const (
	EventPlatformYouTube  EventPlatform = "YouTube"
	EventPlatformZoom     EventPlatform = "Zoom"
	EventPlatformTwitch   EventPlatform = "Twitch"
	EventPlatformOfficial EventPlatform = "Official"
	EventPlatformRecorded EventPlatform = "Recorded"
)

type EventStatus string

const (
	EventStatusLive     EventStatus = "live"
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOnDemand EventStatus = "on-demand"
)

type AssetType string

const (
	AssetTypeLogo AssetType = "logo"
	AssetTypeCard AssetType = "card"
)

type TryOnMode string

const (
	TryOnModePersonal TryOnMode = "personal"
	TryOnModeSpace    TryOnMode = "space"
)

type CollabTarget string

const (
	CollabTargetInfluencers CollabTarget = "influencers"
	CollabTargetBrands      CollabTarget = "brands"
)

type KeywordSentiment string

const (
	KeywordSentimentPositive KeywordSentiment = "positive"
	KeywordSentimentNegative KeywordSentiment = "negative"
)
