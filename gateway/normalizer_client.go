package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NormalizerClient talks to the external linguistic service that lemmatizes
// text and produces embeddings. The service contract is deterministic for
// identical input within a session.
type NormalizerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNormalizerClient(baseURL string) *NormalizerClient {
	return &NormalizerClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type normalizeRequest struct {
	Text string `json:"text"`
}

type tokenizeResponse struct {
	Lemmas []string `json:"lemmas"`
}

type embedResponse struct {
	Vector []float64 `json:"vector"`
}

func (c *NormalizerClient) Tokenize(ctx context.Context, text string) ([]string, error) {
	var response tokenizeResponse
	if err := c.post(ctx, "/tokenize", normalizeRequest{Text: text}, &response); err != nil {
		return nil, fmt.Errorf("could not tokenize text: %w", err)
	}
	return response.Lemmas, nil
}

func (c *NormalizerClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var response embedResponse
	if err := c.post(ctx, "/embed", normalizeRequest{Text: text}, &response); err != nil {
		return nil, fmt.Errorf("could not embed text: %w", err)
	}
	return response.Vector, nil
}

func (c *NormalizerClient) post(ctx context.Context, path string, request any, response any) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %v", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(response)
}
