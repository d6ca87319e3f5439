package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
)

// EmbedMode selects the embedding input type. The index is built with
// ModePassage and queried with ModeQuery; mixing them up is a caller bug the
// service cannot detect, it just quietly degrades retrieval quality.
type EmbedMode string

const (
	ModeQuery   EmbedMode = "query"
	ModePassage EmbedMode = "passage"
)

// Match is one ranked nearest-neighbour result.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]any
}

// Vector is one embedded passage ready for upsert.
type Vector struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// Client talks to a Pinecone-compatible vector index plus its hosted
// embedding endpoint. One client serves all namespaces.
type Client struct {
	apiKey     string
	indexHost  string
	embedURL   string
	embedModel string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.PineconeAPIKey,
		indexHost:  strings.TrimRight(cfg.PineconeIndexHost, "/"),
		embedURL:   cfg.PineconeEmbedURL,
		embedModel: cfg.EmbedModel,
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

func (c *Client) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("X-Pinecone-API-Version", "2024-10")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	return nil
}

// Embed converts texts into vectors using the same hosted model the index was
// built with. Long inputs are truncated at the end by the service.
func (c *Client) Embed(ctx context.Context, texts []string, mode EmbedMode) ([][]float32, error) {
	inputs := make([]map[string]string, len(texts))
	for i, t := range texts {
		inputs[i] = map[string]string{"text": t}
	}

	payload := map[string]any{
		"model":  c.embedModel,
		"inputs": inputs,
		"parameters": map[string]string{
			"input_type": string(mode),
			"truncate":   "END",
		},
	}

	var result struct {
		Data []struct {
			Values []float32 `json:"values"`
		} `json:"data"`
	}
	if err := c.post(ctx, c.embedURL, payload, &result); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("embed: %w: got %d vectors for %d inputs",
			domain.ErrMalformedResponse, len(result.Data), len(texts))
	}

	vectors := make([][]float32, len(result.Data))
	for i, d := range result.Data {
		vectors[i] = d.Values
	}
	return vectors, nil
}

// Query runs a nearest-neighbour search restricted to exactly one namespace
// and returns matches in descending similarity order.
func (c *Client) Query(ctx context.Context, namespace string, vec []float32, topK int) ([]Match, error) {
	payload := map[string]any{
		"namespace":       namespace,
		"vector":          vec,
		"topK":            topK,
		"includeMetadata": true,
	}

	var result struct {
		Matches []struct {
			ID       string         `json:"id"`
			Score    float32        `json:"score"`
			Metadata map[string]any `json:"metadata"`
		} `json:"matches"`
	}
	if err := c.post(ctx, c.indexHost+"/query", payload, &result); err != nil {
		return nil, fmt.Errorf("query namespace %q: %w", namespace, err)
	}

	matches := make([]Match, len(result.Matches))
	for i, m := range result.Matches {
		matches[i] = Match{ID: m.ID, Score: m.Score, Metadata: m.Metadata}
	}
	return matches, nil
}

// Upsert writes embedded passages into one namespace.
func (c *Client) Upsert(ctx context.Context, namespace string, vecs []Vector) error {
	if len(vecs) == 0 {
		return nil
	}

	items := make([]map[string]any, len(vecs))
	for i, v := range vecs {
		items[i] = map[string]any{
			"id":       v.ID,
			"values":   v.Values,
			"metadata": v.Metadata,
		}
	}

	payload := map[string]any{
		"vectors":   items,
		"namespace": namespace,
	}
	if err := c.post(ctx, c.indexHost+"/vectors/upsert", payload, nil); err != nil {
		return fmt.Errorf("upsert namespace %q: %w", namespace, err)
	}
	return nil
}
