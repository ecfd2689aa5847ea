package ingestion

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

// OCRClient extracts raw text from a product detail image.
type OCRClient interface {
	ExtractText(ctx context.Context, imageURL string) (string, error)
}

// VisionOCRClient calls the Google Vision images:annotate REST endpoint
// with TEXT_DETECTION and returns the full-page annotation.
type VisionOCRClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewVisionOCRClient(apiKey string) *VisionOCRClient {
	return &VisionOCRClient{
		BaseURL: "https://vision.googleapis.com/v1",
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type visionAnnotateRequest struct {
	Requests []visionRequestEntry `json:"requests"`
}

type visionRequestEntry struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Source visionImageSource `json:"source"`
}

type visionImageSource struct {
	ImageURI string `json:"imageUri"`
}

type visionFeature struct {
	Type string `json:"type"`
}

type visionAnnotateResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

func (c *VisionOCRClient) ExtractText(ctx context.Context, imageURL string) (string, error) {
	reqBody := visionAnnotateRequest{
		Requests: []visionRequestEntry{
			{
				Image:    visionImage{Source: visionImageSource{ImageURI: imageURL}},
				Features: []visionFeature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal vision request: %w", err)
	}

	url := fmt.Sprintf("%s/images:annotate?key=%s", c.BaseURL, c.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create vision request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call vision api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read vision response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision api returned status %d: %s", resp.StatusCode, string(body))
	}

	var annotateResp visionAnnotateResponse
	if err := json.Unmarshal(body, &annotateResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal vision response: %w", err)
	}

	if len(annotateResp.Responses) == 0 {
		return "", nil
	}
	entry := annotateResp.Responses[0]
	if entry.Error != nil {
		return "", fmt.Errorf("vision api error: %s", entry.Error.Message)
	}
	if len(entry.TextAnnotations) == 0 {
		return "", nil
	}
	return strings.TrimSpace(entry.TextAnnotations[0].Description), nil
}
