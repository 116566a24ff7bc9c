// Package classifier wraps the Hugging Face Inference API for text
// classification. The model is treated as a black box: one request in, a
// ranked list of label/score pairs out.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co"

// Classification is a single label with its confidence score in [0,1].
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client is the process-wide classifier handle. It performs at most one
// outbound call per Classify and never retries.
type Client struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

func New(token, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		model:   model,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// Classify sends the text to the model endpoint and returns its
// classifications, dominant label first. Any transport fault, non-OK status
// or unreadable body is returned as an error for the caller to degrade on.
func (c *Client) Classify(ctx context.Context, text string) ([]Classification, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseClassifications(body)
}

// parseClassifications accepts both response shapes the API serves: a list
// of label/score objects, or that list nested one level deeper (one inner
// list per input).
func parseClassifications(body []byte) ([]Classification, error) {
	var nested [][]Classification
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	var flat []Classification
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("unexpected classifier response: %s", strings.TrimSpace(string(body)))
}
