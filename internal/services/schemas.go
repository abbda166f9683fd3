// internal/services/schemas.go
package services

import (
	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// Declared response schemas for structured model output. These are sent with
// each request and reused to validate what comes back.

func reviewSchema() *genai.Schema {
	return genai.Object(map[string]*genai.Schema{
		"user":      genai.String(),
		"text":      genai.String(),
		"score":     genai.Number(),
		"date":      genai.String(),
		"source":    genai.StringEnum(models.ReviewSourceValues()...),
		"sourceUrl": genai.String(),
	})
}

func shortReviewSchema() *genai.Schema {
	return genai.Object(map[string]*genai.Schema{
		"user":   genai.String(),
		"text":   genai.String(),
		"score":  genai.Number(),
		"source": genai.StringEnum(models.ReviewSourceValues()...),
	})
}

func productInsightSchema() *genai.Schema {
	return genai.Object(map[string]*genai.Schema{
		"name":                 genai.String(),
		"category":             genai.String(),
		"isConsumable":         genai.Boolean(),
		"description":          genai.String(),
		"totalVerifiedReviews": genai.Integer(),
		"priceComparison": genai.Array(genai.Object(map[string]*genai.Schema{
			"store":        genai.String(),
			"price":        genai.String(),
			"link":         genai.String(),
			"availability": genai.Boolean(),
		})),
		"categorizedPulse": genai.Object(map[string]*genai.Schema{
			"quality":    genai.Number(),
			"durability": genai.Number(),
			"value":      genai.Number(),
			"utility":    genai.Number(),
		}),
		"nutritionalFacts": genai.Object(map[string]*genai.Schema{
			"calories": genai.String(),
			"macros": genai.Array(genai.Object(map[string]*genai.Schema{
				"label": genai.String(),
				"value": genai.String(),
			})),
			"healthBenefits": genai.Array(genai.String()),
			"healthWarnings": genai.Array(genai.String()),
		}),
		"recipes": genai.Array(genai.Object(map[string]*genai.Schema{
			"title":       genai.String(),
			"servings":    genai.String(),
			"ingredients": genai.Array(genai.String()),
			"steps":       genai.Array(genai.String()),
		})),
		"pairings": genai.Array(genai.String()),
		"sentiment": genai.Object(map[string]*genai.Schema{
			"positive":             genai.Number(),
			"neutral":              genai.Number(),
			"negative":             genai.Number(),
			"averageRating":        genai.Number(),
			"totalReviewsAnalyzed": genai.Integer(),
			"history": genai.Array(genai.Object(map[string]*genai.Schema{
				"date":     genai.String(),
				"positive": genai.Number(),
				"neutral":  genai.Number(),
				"negative": genai.Number(),
				"netScore": genai.Number(),
			})),
		}),
		"topRelevantReviews": genai.Array(reviewSchema()),
		"topPositiveReviews": genai.Array(shortReviewSchema()),
		"topNegativeReviews": genai.Array(shortReviewSchema()),
		"influencerReviews": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":       genai.String(),
			"platform":   genai.String(),
			"content":    genai.String(),
			"trustScore": genai.Number(),
		})),
		"videoReviews": genai.Array(genai.String()),
		"specifications": genai.Array(genai.Object(map[string]*genai.Schema{
			"label": genai.String(),
			"value": genai.String(),
		})),
		"similarProducts": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":          genai.String(),
			"imageUrl":      genai.String(),
			"priceEstimate": genai.String(),
			"styleCategory": genai.String(),
		})),
		"brandScore": genai.Number(),
	})
}

func brandInsightSchema() *genai.Schema {
	return genai.Object(map[string]*genai.Schema{
		"brandName":        genai.String(),
		"logoUrl":          genai.String(),
		"industry":         genai.String(),
		"description":      genai.String(),
		"mission":          genai.String(),
		"marketTrustScore": genai.Number(),
		"productCatalog": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":       genai.String(),
			"category":   genai.String(),
			"priceRange": genai.String(),
			"trustPulse": genai.Number(),
		})),
		"services": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":        genai.String(),
			"description": genai.String(),
			"priceRange":  genai.String(),
		})),
		"influencerPulse": genai.Array(genai.Object(map[string]*genai.Schema{
			"name":   genai.String(),
			"handle": genai.String(),
			"quote":  genai.String(),
			"score":  genai.Number(),
		})),
		"webMentions": genai.Array(genai.Object(map[string]*genai.Schema{
			"user":   genai.String(),
			"text":   genai.String(),
			"source": genai.String(),
		})),
	})
}

func businessListingSchema() *genai.Schema {
	item := genai.Object(map[string]*genai.Schema{
		"id":           genai.String(),
		"businessName": genai.String(),
		"category":     genai.String(),
		"description":  genai.String(),
		"slogan":       genai.String(),
		"location":     genai.String(),
		"rating":       genai.Number(),
		"isVerified":   genai.Boolean(),
		"image":        genai.String(),
	}, "id", "businessName", "category", "description", "location", "rating", "isVerified", "image")
	return genai.Array(item)
}

func reputationSchema() *genai.Schema {
	item := genai.Object(map[string]*genai.Schema{
		"user":   genai.String(),
		"text":   genai.String(),
		"score":  genai.Number(),
		"date":   genai.String(),
		"source": genai.String(),
	}, "user", "text", "score", "date", "source")
	return genai.Array(item)
}

func collabMatchSchema() *genai.Schema {
	item := genai.Object(map[string]*genai.Schema{
		"id":           genai.String(),
		"name":         genai.String(),
		"category":     genai.String(),
		"reach":        genai.String(),
		"description":  genai.String(),
		"matchedPulse": genai.Number(),
		"email":        genai.String(),
	}, "id", "name", "category", "reach", "description", "matchedPulse", "email")
	return genai.Array(item)
}
