package dto

import (
	"ai-shopchat-be/pkg/embedding"
	"ai-shopchat-be/pkg/store"
)

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatOutcome is the tagged result of one conversation turn. Callers switch
// on the concrete type; there is no ad hoc optional-field object.
type ChatOutcome interface {
	chatOutcome()
}

// AnswerOutcome is a plain textual reply (clarifying question, follow-up
// answer, caution or no-results message).
type AnswerOutcome struct {
	Text string
}

func (AnswerOutcome) chatOutcome() {}

// SearchOutcome is a completed search turn: the analyzed query, the safe
// result set, and the embedding usage.
type SearchOutcome struct {
	Analyzed store.AnalyzedQuery
	Result   []store.ProductMatch
	Usage    embedding.Usage
}

func (SearchOutcome) chatOutcome() {}

// Wire shapes produced by the controller.

type AnswerResponse struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

type SearchResponse struct {
	Analyzed store.AnalyzedQuery  `json:"analyzed"`
	Result   []store.ProductMatch `json:"result"`
	Usage    embedding.Usage      `json:"usage"`
}
