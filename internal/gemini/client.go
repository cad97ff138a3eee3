package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zerolog.Logger
}

// Client issues generateContent calls against the Gemini API over plain HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	logger     zerolog.Logger
}

// New builds a Client, applying defaults for anything left unset.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		model:      model,
		apiKey:     strings.TrimSpace(opts.APIKey),
		logger:     logger,
	}
}

// Generate sends one synchronous generateContent call carrying the ordered
// part list, requests image-modality output, and returns the first inline
// image of the first candidate as a data URL. There is exactly one attempt:
// nothing is retried.
func (c *Client) Generate(ctx context.Context, parts []Part) (string, error) {
	if c == nil {
		return "", errors.New("gemini: client not configured")
	}
	if c.apiKey == "" {
		return "", errors.New("gemini: API key is missing")
	}
	if len(parts) == 0 {
		return "", errors.New("gemini: at least one part is required")
	}

	payload := generateContentRequest{
		Contents:         []Content{{Role: "user", Parts: parts}},
		GenerationConfig: generationConfig{ResponseModalities: []string{"IMAGE", "TEXT"}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", fmt.Errorf("gemini: http %d", resp.StatusCode)
		}
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("gemini: %s", out.Error.Message)
		}
		return "", fmt.Errorf("gemini: http %d", resp.StatusCode)
	}

	c.logger.Debug().
		Int("parts", len(parts)).
		Int("candidates", len(out.Candidates)).
		Dur("took", time.Since(start)).
		Msg("generateContent")

	if len(out.Candidates) == 0 {
		return "", ErrNoImage
	}
	return FirstImageDataURL(out.Candidates[0].Content.Parts)
}
