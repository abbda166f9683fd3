// internal/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultTextModel  = "gemini-3-flash-preview"
	defaultImageModel = "gemini-2.5-flash-image"
)

// Client talks to the Gemini generateContent REST endpoint. One instance is
// shared by every service; it holds no per-request state.
type Client struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, textModel, imageModel string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if textModel == "" {
		textModel = defaultTextModel
	}
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) TextModel() string  { return c.textModel }
func (c *Client) ImageModel() string { return c.imageModel }

// InlineData carries base64-encoded media in either direction.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

func UserText(text string) Content {
	return Content{Role: "user", Parts: []Part{{Text: text}}}
}

func ModelText(text string) Content {
	return Content{Role: "model", Parts: []Part{{Text: text}}}
}

// Request describes one generateContent call.
type Request struct {
	Model      string // defaults to the client's text model
	System     string
	Contents   []Content
	JSONOutput bool
	Schema     *Schema
	UseSearch  bool // enable the Google Search grounding tool
	MaxTokens  int
}

// Response is the flattened result: concatenated text parts plus any inline
// images the image models return.
type Response struct {
	Text         string
	Images       []InlineData
	Model        string
	FinishReason string
}

// APIError is a non-2xx answer from the upstream endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai: API error (status %d): %s", e.StatusCode, e.Body)
}

func (c *Client) Generate(ctx context.Context, req Request) (Response, error) {
	if c.apiKey == "" {
		return Response{}, fmt.Errorf("genai: client not configured")
	}

	model := req.Model
	if model == "" {
		model = c.textModel
	}

	body := map[string]interface{}{
		"contents": req.Contents,
	}

	if req.System != "" {
		body["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]string{{"text": req.System}},
		}
	}

	generationConfig := map[string]interface{}{}
	if req.MaxTokens > 0 {
		generationConfig["maxOutputTokens"] = req.MaxTokens
	}
	if req.JSONOutput {
		generationConfig["responseMimeType"] = "application/json"
	}
	if req.Schema != nil {
		generationConfig["responseSchema"] = req.Schema
	}
	if len(generationConfig) > 0 {
		body["generationConfig"] = generationConfig
	}

	if req.UseSearch {
		body["tools"] = []map[string]interface{}{
			{"google_search": map[string]interface{}{}},
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("genai: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return Response{}, fmt.Errorf("genai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("genai: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("genai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text       string      `json:"text"`
					InlineData *InlineData `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
		ModelVersion string `json:"modelVersion"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, fmt.Errorf("genai: failed to parse response: %w", err)
	}

	out := Response{Model: model}
	if result.ModelVersion != "" {
		out.Model = result.ModelVersion
	}
	if len(result.Candidates) > 0 {
		cand := result.Candidates[0]
		out.FinishReason = cand.FinishReason
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				out.Text += part.Text
			}
			if part.InlineData != nil {
				out.Images = append(out.Images, *part.InlineData)
			}
		}
	}

	if out.FinishReason == "MAX_TOKENS" {
		logrus.WithFields(logrus.Fields{
			"model":          out.Model,
			"content_length": len(out.Text),
		}).Warn("Model response truncated at max tokens")
	}

	return out, nil
}
