package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-shopchat-be/pkg/store"
)

// Client talks to the Qdrant REST API. Each query is a self-contained read;
// no client-side retries.
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Query runs a fused hybrid query against one collection and returns the
// scored points with payload.
func (c *Client) Query(ctx context.Context, collection string, req *QueryRequest) ([]store.ProductMatch, error) {
	var res queryResponse
	url := fmt.Sprintf("%s/collections/%s/points/query", c.BaseURL, collection)
	if err := c.do(ctx, http.MethodPost, url, req, &res); err != nil {
		return nil, err
	}
	return res.Result.Points, nil
}

// Upsert writes points (payload + named dense/sparse vectors) and waits for
// the operation to land.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.BaseURL, collection)
	return c.do(ctx, http.MethodPut, url, upsertRequest{Points: points}, nil)
}

// CreateCollection provisions the collection with a named dense vector field
// (cosine distance) and a named sparse vector field.
func (c *Client) CreateCollection(ctx context.Context, collection string, denseSize int) error {
	req := createCollectionRequest{
		Vectors: map[string]vectorParams{
			"dense": {Size: denseSize, Distance: "Cosine"},
		},
		SparseVectors: map[string]struct{}{
			"sparse": {},
		},
	}
	url := fmt.Sprintf("%s/collections/%s", c.BaseURL, collection)
	return c.do(ctx, http.MethodPut, url, req, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal qdrant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("api-key", c.APIKey)
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("error from qdrant response, code %d, body %s", res.StatusCode, string(resBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resBytes, out); err != nil {
		return fmt.Errorf("decode qdrant response: %w", err)
	}
	return nil
}
