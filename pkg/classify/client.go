package classify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HoneyDaddy04/Voice-OS/pkg/category"
)

// Classifier is the external AI boundary: audio in, typed result out.
type Classifier interface {
	Classify(ctx context.Context, audio []byte, mimeType string, preferred *category.Category) (Result, error)
}

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-3-flash-preview"
)

// Client calls a Gemini-style generateContent endpoint.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, model, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateRequest struct {
	SystemInstruction *contentPart `json:"systemInstruction,omitempty"`
	Contents          []contentPart `json:"contents"`
	GenerationConfig  map[string]any `json:"generationConfig,omitempty"`
}

type contentPart struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Classify submits one audio clip and decodes the structured result. The
// preferred category, when present, is passed as a routing hint.
func (c *Client) Classify(ctx context.Context, audio []byte, mimeType string, preferred *category.Category) (Result, error) {
	if c.apiKey == "" {
		return Result{}, errors.New("classify: api key not configured")
	}

	hint := ""
	if preferred != nil {
		hint = preferred.String()
	}

	reqBody := generateRequest{
		SystemInstruction: &contentPart{Parts: []part{{Text: systemInstruction}}},
		Contents: []contentPart{{
			Parts: []part{
				{Text: contextMessage(hint)},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
			},
		}},
		GenerationConfig: map[string]any{
			"responseMimeType": "application/json",
			"responseSchema":   responseSchema(),
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("classify: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("classify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("classify: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("classify: status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return Result{}, fmt.Errorf("classify: decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Result{}, errors.New("classify: empty response")
	}

	var result Result
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return Result{}, fmt.Errorf("classify: decode result: %w", err)
	}
	return result, nil
}
