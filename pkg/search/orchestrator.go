package search

import (
	"context"
	"log"

	"ai-shopchat-be/pkg/qdrant"
	"ai-shopchat-be/pkg/sparse"
	"ai-shopchat-be/pkg/store"
)

// VectorSearcher is the subset of the vector-store client the orchestrator
// needs. Satisfied by *qdrant.Client.
type VectorSearcher interface {
	Query(ctx context.Context, collection string, req *qdrant.QueryRequest) ([]store.ProductMatch, error)
}

// Orchestrator issues cascading dense+sparse fused queries with progressive
// filter relaxation.
type Orchestrator struct {
	client     VectorSearcher
	collection string
	config     Config
	logger     *log.Logger
}

// Config encapsulates hybrid query parameters.
type Config struct {
	PrefetchLimit  int
	Limit          int
	ScoreThreshold float64
}

// DefaultConfig returns the production hybrid query configuration.
func DefaultConfig() Config {
	return Config{
		PrefetchLimit:  50,
		Limit:          5,
		ScoreThreshold: 0.25,
	}
}

func NewOrchestrator(client VectorSearcher, collection string, config Config, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		client:     client,
		collection: collection,
		config:     config,
		logger:     logger,
	}
}

// Execute runs the relaxation cascade and returns the first non-empty stage
// result. Stage order: full filters, brand cleared, brand+category cleared,
// no filters. Later stages only relax earlier ones, so results get less
// constrained, never contradictory. All stages empty is not an error.
func (o *Orchestrator) Execute(
	ctx context.Context,
	dense []float32,
	sparseVec sparse.Vector,
	filters store.Filters,
) ([]store.ProductMatch, error) {

	stages := []store.Filters{
		filters,
		{MinPrice: filters.MinPrice, MaxPrice: filters.MaxPrice, Category: filters.Category},
		{MinPrice: filters.MinPrice, MaxPrice: filters.MaxPrice},
		{},
	}

	for i, stage := range stages {
		result, err := o.runHybrid(ctx, dense, sparseVec, BuildFilter(stage))
		if err != nil {
			return nil, err
		}
		if len(result) > 0 {
			o.logger.Printf("[DEBUG] Hybrid search stage %d: %d results", i+1, len(result))
			return result, nil
		}
		o.logger.Printf("[DEBUG] Hybrid search stage %d: empty, relaxing", i+1)
	}

	return nil, nil
}

// runHybrid performs one fused query: dense prefetch, sparse prefetch when
// the sparse vector is non-empty, reciprocal-rank fusion over both lists.
func (o *Orchestrator) runHybrid(
	ctx context.Context,
	dense []float32,
	sparseVec sparse.Vector,
	filter *qdrant.Filter,
) ([]store.ProductMatch, error) {

	prefetch := []qdrant.Prefetch{
		{
			Query:  qdrant.NearestQuery{Nearest: dense},
			Using:  "dense",
			Limit:  o.config.PrefetchLimit,
			Filter: filter,
		},
	}
	if !sparseVec.IsEmpty() {
		prefetch = append(prefetch, qdrant.Prefetch{
			Query: qdrant.NearestQuery{Nearest: qdrant.SparseVector{
				Indices: sparseVec.Indices,
				Values:  sparseVec.Values,
			}},
			Using:  "sparse",
			Limit:  o.config.PrefetchLimit,
			Filter: filter,
		})
	}

	req := &qdrant.QueryRequest{
		Prefetch:       prefetch,
		Query:          qdrant.FusionQuery{Fusion: "rrf"},
		Limit:          o.config.Limit,
		ScoreThreshold: o.config.ScoreThreshold,
		WithPayload:    true,
		Filter:         filter,
	}

	return o.client.Query(ctx, o.collection, req)
}
