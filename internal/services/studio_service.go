// internal/services/studio_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trustpulse/pulse-backend/internal/genai"
	"github.com/trustpulse/pulse-backend/internal/models"
)

// StudioService wraps the image-model features: business asset generation,
// the virtual try-on, and measurement estimation. Every failure resolves to
// an empty result; the handlers render a neutral retake/retry state instead
// of surfacing the error.
type StudioService struct {
	ai *genai.Client
}

type GenerateAssetRequest struct {
	Prompt    string           `json:"prompt" validate:"required,min=3"`
	AssetType models.AssetType `json:"assetType" validate:"required,oneof=logo card"`
}

type TryOnRequest struct {
	Image    string           `json:"image" validate:"required"` // base64, no data: prefix
	MimeType string           `json:"mimeType,omitempty"`
	Prompt   string           `json:"prompt" validate:"required"`
	Mode     models.TryOnMode `json:"mode" validate:"required,oneof=personal space"`
}

type MeasureRequest struct {
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mimeType,omitempty"`
	Target   string `json:"target" validate:"required"`
}

func NewStudioService(ai *genai.Client) *StudioService {
	return &StudioService{ai: ai}
}

// GenerateAsset produces a logo or business card image. Returns a data URL,
// or "" when the model produced nothing usable.
func (s *StudioService) GenerateAsset(ctx context.Context, prompt string, assetType models.AssetType) string {
	resp, err := s.ai.Generate(ctx, genai.Request{
		Model:    s.ai.ImageModel(),
		Contents: []genai.Content{genai.UserText(fmt.Sprintf("Generate a professional %s: %s", assetType, prompt))},
	})
	if err != nil {
		logrus.WithError(err).WithField("asset_type", assetType).Warn("Asset generation failed")
		return ""
	}
	return firstImageDataURL(resp)
}

// TryOn runs the virtual try-on: the captured photo plus a product prompt
// in, a composited image out.
func (s *StudioService) TryOn(ctx context.Context, req *TryOnRequest) string {
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	resp, err := s.ai.Generate(ctx, genai.Request{
		Model: s.ai.ImageModel(),
		Contents: []genai.Content{{
			Role: "user",
			Parts: []genai.Part{
				{InlineData: &genai.InlineData{MimeType: mimeType, Data: req.Image}},
				{Text: fmt.Sprintf("Virtual try-on for: %s. Mode: %s.", req.Prompt, req.Mode)},
			},
		}},
	})
	if err != nil {
		logrus.WithError(err).WithField("mode", req.Mode).Warn("Virtual try-on failed")
		return ""
	}
	return firstImageDataURL(resp)
}

// EstimateMeasurement asks the text model to size up the target in a photo.
// The fixed fallback strings stand in for any failure mode.
func (s *StudioService) EstimateMeasurement(ctx context.Context, req *MeasureRequest) string {
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	resp, err := s.ai.Generate(ctx, genai.Request{
		Contents: []genai.Content{{
			Role: "user",
			Parts: []genai.Part{
				{InlineData: &genai.InlineData{MimeType: mimeType, Data: req.Image}},
				{Text: fmt.Sprintf("Estimate dimensions for %s.", req.Target)},
			},
		}},
	})
	if err != nil {
		logrus.WithError(err).WithField("target", req.Target).Warn("Measurement estimation failed")
		return "Scan failed."
	}
	if resp.Text == "" {
		return "Analysis inconclusive."
	}
	return resp.Text
}

func firstImageDataURL(resp genai.Response) string {
	for _, img := range resp.Images {
		if img.Data != "" {
			mimeType := img.MimeType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return fmt.Sprintf("data:%s;base64,%s", mimeType, img.Data)
		}
	}
	return ""
}
