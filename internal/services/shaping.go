// internal/services/shaping.go
package services

import (
	"fmt"
	"strings"

	"github.com/trustpulse/pulse-backend/internal/models"
)

// Pure presentation transforms. Each is recomputed from current state on
// every request; none of them keeps state of its own.

// BucketByStyle partitions similar products into the four fixed style
// buckets. Every bucket key is always present, and every item lands in
// exactly one bucket: anything with an unrecognized styleCategory falls into
// Casual rather than being dropped.
func BucketByStyle(products []models.SimilarProduct) map[models.StyleCategory][]models.SimilarProduct {
	buckets := make(map[models.StyleCategory][]models.SimilarProduct, len(models.StyleCategories))
	for _, category := range models.StyleCategories {
		buckets[category] = []models.SimilarProduct{}
	}

	for _, p := range products {
		category := p.StyleCategory
		if !category.IsValid() {
			category = models.StyleCategoryCasual
		}
		buckets[category] = append(buckets[category], p)
	}

	return buckets
}

// MergeReviews builds the "relevant" tab: locally authored reviews (already
// newest-first) strictly ahead of fetched ones, each sublist keeping its own
// order. The positive/negative tabs show fetched data only and never pass
// through here.
func MergeReviews(local, fetched []models.SocialComment) []models.SocialComment {
	merged := make([]models.SocialComment, 0, len(local)+len(fetched))
	merged = append(merged, local...)
	merged = append(merged, fetched...)
	return merged
}

// MatchesListing reports whether a single directory entry passes the search
// conjunction: term is a case-insensitive substring of name or description,
// AND the category filter is "All" or an exact match. An empty term always
// passes the search half.
func MatchesListing(listing models.BusinessListing, term, category string) bool {
	if category != "All" && listing.Category != category {
		return false
	}
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(listing.BusinessName), needle) ||
		strings.Contains(strings.ToLower(listing.Description), needle)
}

// FilterListings applies MatchesListing across a directory, preserving
// order. No ranking or scoring.
func FilterListings(listings []models.BusinessListing, term, category string) []models.BusinessListing {
	filtered := make([]models.BusinessListing, 0, len(listings))
	for _, listing := range listings {
		if MatchesListing(listing, term, category) {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

// ScoreWidth maps a 0-100 metric to its CSS width. Direct linear identity;
// the input domain is assumed, not enforced.
func ScoreWidth(score float64) string {
	return fmt.Sprintf("%g%%", score)
}
