// Package model is the client for the external token-classification
// service. Its output is an ordered (token, BIO label) sequence aligned
// with the document; decoding happens in the engine, inference stays out.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/admindocx/admindoc-backend/internal/extraction/domain"
)

// Client calls the token-classification model service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a model client for the given service URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type classifyResponse struct {
	Tokens []domain.TokenLabel `json:"tokens"`
}

// Classify sends the image to the model service and returns the ordered
// token/label sequence. An empty sequence is a valid answer.
func (c *Client) Classify(ctx context.Context, imageData []byte) ([]domain.TokenLabel, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "document.bin")
	if err != nil {
		return nil, fmt.Errorf("model: create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("model: write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("model: close multipart writer: %w", err)
	}

	url := c.baseURL + "/api/v1/classify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("model: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model: classification request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("model: read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model: classification service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed classifyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("model: parse response: %w", err)
	}

	return parsed.Tokens, nil
}
