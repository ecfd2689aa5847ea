package embedding

import "context"

// Usage carries token accounting from the embedding service.
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is one embedding call result: the dense vector plus usage.
type Response struct {
	Embedding []float32 `json:"embedding"`
	Usage     Usage     `json:"usage"`
}

// BatchResponse is a multi-input embedding call result, vectors in input order.
type BatchResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Usage      Usage       `json:"usage"`
}

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) (*Response, error)
	GenerateBatch(ctx context.Context, texts []string) (*BatchResponse, error)
}
