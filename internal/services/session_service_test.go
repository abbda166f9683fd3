// internal/services/session_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustpulse/pulse-backend/internal/config"
	"github.com/trustpulse/pulse-backend/internal/models"
	"github.com/trustpulse/pulse-backend/internal/state"
	"github.com/trustpulse/pulse-backend/internal/utils"
)

func newSessionService(t *testing.T) (*SessionService, *state.Store) {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	store := state.NewStore(time.Hour)
	cfg := &config.Config{
		Session: config.SessionConfig{SecretKey: "test-secret", TTLHours: 24},
	}
	return NewSessionService(store, cfg), store
}

func TestLoginProviderVerification(t *testing.T) {
	svc, store := newSessionService(t)

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Provider: models.LoginProviderGoogle})
	require.NoError(t, err)
	assert.True(t, resp.User.IsVerified)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	guest, err := svc.Login(&LoginRequest{Name: "Visitor", Provider: models.LoginProviderGuest})
	require.NoError(t, err)
	assert.False(t, guest.User.IsVerified)

	// Each login creates its own session holding the user.
	sess, ok := store.Get(resp.User.ID)
	require.True(t, ok)
	require.NotNil(t, sess.User())
	assert.Equal(t, "Alex", sess.User().Name)
}

func TestLoginTokenRoundTrips(t *testing.T) {
	svc, _ := newSessionService(t)

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Provider: models.LoginProviderFacebook})
	require.NoError(t, err)

	claims, err := utils.ValidateSessionToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.SessionID)
	assert.Equal(t, "Alex", claims.Name)
	assert.True(t, claims.IsVerified)
}

func TestLoginRejectsUnknownProvider(t *testing.T) {
	svc, _ := newSessionService(t)

	_, err := svc.Login(&LoginRequest{Name: "Alex", Provider: "myspace"})
	assert.Error(t, err)
}

func TestLogoutDropsSession(t *testing.T) {
	svc, store := newSessionService(t)

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Provider: models.LoginProviderGoogle})
	require.NoError(t, err)

	sess, ok := store.Get(resp.User.ID)
	require.True(t, ok)

	svc.Logout(sess)
	_, ok = store.Get(resp.User.ID)
	assert.False(t, ok)
}

func TestApplyCreatorUpgradesFlagsAndReissuesToken(t *testing.T) {
	svc, store := newSessionService(t)

	resp, err := svc.Login(&LoginRequest{Name: "Alex", Provider: models.LoginProviderGoogle})
	require.NoError(t, err)
	sess, _ := store.Get(resp.User.ID)

	upgraded, err := svc.ApplyCreator(sess, &CreatorApplyRequest{Role: "influencer"})
	require.NoError(t, err)
	assert.True(t, upgraded.User.IsInfluencer)
	assert.True(t, upgraded.User.IsCreator)
	assert.NotZero(t, upgraded.User.InfluenceScore)

	claims, err := utils.ValidateSessionToken(upgraded.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsInfluencer)

	blogger, err := svc.ApplyCreator(sess, &CreatorApplyRequest{Role: "blogger"})
	require.NoError(t, err)
	assert.True(t, blogger.User.IsBlogger)
}

func TestApplyCreatorRequiresUser(t *testing.T) {
	svc, store := newSessionService(t)
	sess := store.Create("anon")

	_, err := svc.ApplyCreator(sess, &CreatorApplyRequest{Role: "blogger"})
	assert.Error(t, err)
}
