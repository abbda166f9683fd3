// internal/state/store_test.go
package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

func TestNewSessionStartsWithSeedListings(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	listings := sess.Businesses()
	require.Len(t, listings, 2)
	assert.Equal(t, "EcoTech Solutions", listings[0].BusinessName)
	assert.Equal(t, "Lumina Dental", listings[1].BusinessName)
}

func TestBeginSearchClearsInsightState(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	seq := sess.BeginSearch()
	require.True(t, sess.CommitProduct(seq, &models.ProductInsight{Name: "Dior Homme"}))
	sess.PrependReview(models.SocialComment{ID: "r1", Text: "great"})

	sess.BeginSearch()

	product, brand := sess.CurrentInsight()
	assert.Nil(t, product)
	assert.Nil(t, brand)
	assert.Empty(t, sess.LocalReviews())
}

func TestStaleCommitIsDiscarded(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	first := sess.BeginSearch()
	second := sess.BeginSearch()

	// The slow first fetch lands after the second search began.
	assert.False(t, sess.CommitProduct(first, &models.ProductInsight{Name: "stale"}))

	product, _ := sess.CurrentInsight()
	assert.Nil(t, product)

	require.True(t, sess.CommitProduct(second, &models.ProductInsight{Name: "fresh"}))
	product, _ = sess.CurrentInsight()
	require.NotNil(t, product)
	assert.Equal(t, "fresh", product.Name)
}

func TestCommitBrandDisplacesProduct(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	seq := sess.BeginSearch()
	require.True(t, sess.CommitProduct(seq, &models.ProductInsight{Name: "Dior Homme"}))

	seq = sess.BeginSearch()
	require.True(t, sess.CommitBrand(seq, &models.BrandInsight{BrandName: "Dior"}))

	product, brand := sess.CurrentInsight()
	assert.Nil(t, product)
	require.NotNil(t, brand)
	assert.Equal(t, "Dior", brand.BrandName)
}

func TestUserReturnsCopy(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	sess.SetUser(&models.User{ID: "u1", Name: "Alex"})

	u := sess.User()
	u.Name = "mutated"

	assert.Equal(t, "Alex", sess.User().Name)
}

func TestPrependKeepsNewestFirst(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	sess.PrependReview(models.SocialComment{ID: "r1"})
	sess.PrependReview(models.SocialComment{ID: "r2"})

	reviews := sess.LocalReviews()
	require.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
	assert.Equal(t, "r1", reviews[1].ID)
}

func TestChatTurnsCommitTogether(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create("s1")

	sess.AppendChatTurn(genai.UserText("hi"), genai.ModelText("hello"))

	history := sess.ChatHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)

	sess.ResetChat()
	assert.Empty(t, sess.ChatHistory())
}

func TestGetOrCreateResurrectsSweptSession(t *testing.T) {
	store := NewStore(time.Hour)
	store.Create("s1")
	store.Delete("s1")

	_, ok := store.Get("s1")
	require.False(t, ok)

	sess := store.GetOrCreate("s1")
	require.NotNil(t, sess)
	assert.Nil(t, sess.User())
}
