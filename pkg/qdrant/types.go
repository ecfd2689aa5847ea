package qdrant

import (
	"ai-shopchat-be/pkg/store"
)

// Match is an equality predicate on a payload key.
type Match struct {
	Value interface{} `json:"value"`
}

// Range is a numeric range predicate; nil bounds are open.
type Range struct {
	Gte *float64 `json:"gte,omitempty"`
	Lte *float64 `json:"lte,omitempty"`
}

// Condition is one must-clause of a filter.
type Condition struct {
	Key   string `json:"key"`
	Match *Match `json:"match,omitempty"`
	Range *Range `json:"range,omitempty"`
}

// Filter is the predicate set attached to a query. A nil *Filter means
// unfiltered.
type Filter struct {
	Must []Condition `json:"must"`
}

// SparseVector mirrors the named sparse vector wire format.
type SparseVector struct {
	Indices []uint32  `json:"indices"`
	Values  []float64 `json:"values"`
}

// NearestQuery wraps a nearest-neighbor query vector; Nearest is either a
// dense []float32 or a SparseVector.
type NearestQuery struct {
	Nearest interface{} `json:"nearest"`
}

// Prefetch is one candidate-producing sub-query of a fused hybrid query.
type Prefetch struct {
	Query  NearestQuery `json:"query"`
	Using  string       `json:"using"`
	Limit  int          `json:"limit"`
	Filter *Filter      `json:"filter,omitempty"`
}

// FusionQuery selects the rank-fusion method applied over prefetch results.
type FusionQuery struct {
	Fusion string `json:"fusion"`
}

// QueryRequest is the points/query request body.
type QueryRequest struct {
	Prefetch       []Prefetch  `json:"prefetch"`
	Query          FusionQuery `json:"query"`
	Limit          int         `json:"limit"`
	ScoreThreshold float64     `json:"score_threshold"`
	WithPayload    bool        `json:"with_payload"`
	Filter         *Filter     `json:"filter,omitempty"`
}

type queryResponse struct {
	Result struct {
		Points []store.ProductMatch `json:"points"`
	} `json:"result"`
	Status interface{} `json:"status"`
}

// PointVectors carries the named dense and sparse vectors of one point.
type PointVectors struct {
	Dense  []float32    `json:"dense"`
	Sparse SparseVector `json:"sparse"`
}

// Point is one upsertable catalog point.
type Point struct {
	ID      interface{}          `json:"id"`
	Payload store.ProductPayload `json:"payload"`
	Vector  PointVectors         `json:"vector"`
}

type upsertRequest struct {
	Points []Point `json:"points"`
}

type createCollectionRequest struct {
	Vectors       map[string]vectorParams `json:"vectors"`
	SparseVectors map[string]struct{}     `json:"sparse_vectors"`
}

type vectorParams struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}
