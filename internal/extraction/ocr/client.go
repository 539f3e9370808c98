// Package ocr is the client for the external text-recognition service.
// The engine itself never touches images; recognized text is just input.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// JPEG and PNG magic bytes for image detection
var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Word is one recognized token with the recognizer's own confidence and
// position, forwarded as opaque structural data.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Left       int     `json:"left"`
	Top        int     `json:"top"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

// Result is the recognition output: best-effort text, possibly empty,
// plus optional layout data.
type Result struct {
	Text  string `json:"text"`
	Words []Word `json:"words,omitempty"`
}

// Client calls the OCR recognition service over HTTP.
type Client struct {
	baseURL    string
	languages  string
	httpClient *http.Client
}

// NewClient creates an OCR client for the given service URL. languages is
// the recognition language hint (e.g. "fra+eng").
func NewClient(baseURL, languages string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		languages: languages,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Recognize sends the image bytes to the recognition service and returns
// the recognized text with optional structural data.
func (c *Client) Recognize(ctx context.Context, imageData []byte) (*Result, error) {
	if !isImageData(imageData) {
		return nil, fmt.Errorf("ocr: data is not a JPEG or PNG image")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "document.bin")
	if err != nil {
		return nil, fmt.Errorf("ocr: create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("ocr: write image data: %w", err)
	}
	if err := writer.WriteField("languages", c.languages); err != nil {
		return nil, fmt.Errorf("ocr: write languages field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("ocr: close multipart writer: %w", err)
	}

	url := c.baseURL + "/api/v1/recognize"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("ocr: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr: recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ocr: read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr: recognition service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("ocr: parse response: %w", err)
	}

	return &result, nil
}

// isImageData checks for JPEG or PNG magic bytes at the start of the data.
func isImageData(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return bytes.HasPrefix(data, jpegMagic) || bytes.HasPrefix(data, pngMagic)
}
