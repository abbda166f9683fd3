// internal/services/shaping_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustpulse/pulse-backend/internal/models"
)

func TestBucketByStylePartitionsEveryItem(t *testing.T) {
	products := []models.SimilarProduct{
		{Name: "A", StyleCategory: models.StyleCategoryLuxury},
		{Name: "B", StyleCategory: "Sporty"}, // unrecognized
		{Name: "C", StyleCategory: models.StyleCategoryComfort},
		{Name: "D", StyleCategory: models.StyleCategoryCasual},
	}

	buckets := BucketByStyle(products)

	// All four keys present even when a bucket is empty.
	require.Len(t, buckets, 4)
	for _, category := range models.StyleCategories {
		_, ok := buckets[category]
		assert.True(t, ok, "missing bucket %s", category)
	}

	assert.Len(t, buckets[models.StyleCategoryLuxury], 1)
	assert.Len(t, buckets[models.StyleCategoryComfort], 1)
	assert.Empty(t, buckets[models.StyleCategoryAesthetics])

	// The unrecognized item falls into Casual instead of vanishing.
	casual := buckets[models.StyleCategoryCasual]
	require.Len(t, casual, 2)
	assert.Equal(t, "B", casual[0].Name)
	assert.Equal(t, "D", casual[1].Name)
}

func TestBucketByStyleEmptyInput(t *testing.T) {
	buckets := BucketByStyle(nil)
	require.Len(t, buckets, 4)
	for _, category := range models.StyleCategories {
		assert.NotNil(t, buckets[category])
		assert.Empty(t, buckets[category])
	}
}

func TestMergeReviewsLocalFirst(t *testing.T) {
	local := []models.SocialComment{{ID: "l1"}, {ID: "l2"}}
	fetched := []models.SocialComment{{ID: "f1"}, {ID: "f2"}}

	merged := MergeReviews(local, fetched)

	require.Len(t, merged, 4)
	assert.Equal(t, "l1", merged[0].ID)
	assert.Equal(t, "l2", merged[1].ID)
	assert.Equal(t, "f1", merged[2].ID)
	assert.Equal(t, "f2", merged[3].ID)
}

func TestMergeReviewsIsPure(t *testing.T) {
	local := []models.SocialComment{{ID: "l1"}}
	fetched := []models.SocialComment{{ID: "f1"}}

	first := MergeReviews(local, fetched)
	second := MergeReviews(local, fetched)

	assert.Equal(t, first, second)
	assert.Len(t, local, 1)
	assert.Len(t, fetched, 1)
}

func TestFilterListingsConjunction(t *testing.T) {
	listings := []models.BusinessListing{
		{BusinessName: "EcoTech Solutions", Category: "Services", Description: "Sustainable tech consulting"},
		{BusinessName: "Lumina Dental", Category: "Health", Description: "Family dentistry"},
	}

	// Term matches name substring, category "All" passes everything.
	got := FilterListings(listings, "dent", "All")
	require.Len(t, got, 1)
	assert.Equal(t, "Lumina Dental", got[0].BusinessName)

	// Same term with a non-matching category filter excludes it.
	assert.Empty(t, FilterListings(listings, "dent", "Services"))

	// Term can match the description too.
	got = FilterListings(listings, "consulting", "All")
	require.Len(t, got, 1)
	assert.Equal(t, "EcoTech Solutions", got[0].BusinessName)

	// Empty term with exact category.
	got = FilterListings(listings, "", "Health")
	require.Len(t, got, 1)
	assert.Equal(t, "Lumina Dental", got[0].BusinessName)

	// Empty term and "All" returns everything in order.
	got = FilterListings(listings, "", "All")
	require.Len(t, got, 2)
	assert.Equal(t, "EcoTech Solutions", got[0].BusinessName)
}

func TestFilterListingsCaseInsensitive(t *testing.T) {
	listings := []models.BusinessListing{
		{BusinessName: "Lumina Dental", Category: "Health", Description: "Family dentistry"},
	}

	assert.Len(t, FilterListings(listings, "LUMINA", "All"), 1)
	assert.Len(t, FilterListings(listings, "lumina", "Health"), 1)
}

func TestScoreWidth(t *testing.T) {
	assert.Equal(t, "0%", ScoreWidth(0))
	assert.Equal(t, "87%", ScoreWidth(87))
	assert.Equal(t, "99.5%", ScoreWidth(99.5))
	assert.Equal(t, "100%", ScoreWidth(100))
}
