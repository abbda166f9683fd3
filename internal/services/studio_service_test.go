// internal/services/studio_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// newImageAI answers every call with a single inline image.
func newImageAI(t *testing.T, mimeType, data string) *genai.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"inlineData": map[string]string{"mimeType": mimeType, "data": data}},
						},
					},
					"finishReason": "STOP",
				},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return genai.NewClient("test-key", server.URL, "", "", 0)
}

func TestGenerateAssetReturnsDataURL(t *testing.T) {
	svc := NewStudioService(newImageAI(t, "image/png", "aGVsbG8="))

	got := svc.GenerateAsset(context.Background(), "minimalist bakery logo", models.AssetTypeLogo)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", got)
}

func TestGenerateAssetFailureIsEmpty(t *testing.T) {
	svc := NewStudioService(newFailingAI(t, http.StatusServiceUnavailable))
	assert.Empty(t, svc.GenerateAsset(context.Background(), "logo", models.AssetTypeLogo))

	// A text-only answer with no image also yields nothing.
	svc = NewStudioService(newStubAI(t, "sorry, no image"))
	assert.Empty(t, svc.GenerateAsset(context.Background(), "logo", models.AssetTypeLogo))
}

func TestTryOnReturnsCompositedImage(t *testing.T) {
	svc := NewStudioService(newImageAI(t, "", "Y29tcG9zaXRl"))

	got := svc.TryOn(context.Background(), &TryOnRequest{
		Image:  "c2VsZmll",
		Prompt: "Dior Homme Intense bottle",
		Mode:   models.TryOnModePersonal,
	})

	// Missing mime type falls back to image/png on output.
	assert.Equal(t, "data:image/png;base64,Y29tcG9zaXRl", got)
}

func TestTryOnFailureIsEmpty(t *testing.T) {
	svc := NewStudioService(newFailingAI(t, http.StatusServiceUnavailable))

	got := svc.TryOn(context.Background(), &TryOnRequest{
		Image:  "c2VsZmll",
		Prompt: "bottle",
		Mode:   models.TryOnModeSpace,
	})
	assert.Empty(t, got)
}

func TestEstimateMeasurementFallbacks(t *testing.T) {
	svc := NewStudioService(newStubAI(t, "Roughly 120cm x 80cm."))
	got := svc.EstimateMeasurement(context.Background(), &MeasureRequest{Image: "cGhvdG8=", Target: "sofa"})
	assert.Equal(t, "Roughly 120cm x 80cm.", got)

	svc = NewStudioService(newFailingAI(t, http.StatusServiceUnavailable))
	got = svc.EstimateMeasurement(context.Background(), &MeasureRequest{Image: "cGhvdG8=", Target: "sofa"})
	assert.Equal(t, "Scan failed.", got)

	svc = NewStudioService(newStubAI(t, ""))
	got = svc.EstimateMeasurement(context.Background(), &MeasureRequest{Image: "cGhvdG8=", Target: "sofa"})
	assert.Equal(t, "Analysis inconclusive.", got)
}
