package store

import "encoding/json"

// ProductPayload is the stored document payload of a catalog point.
type ProductPayload struct {
	GoodsNo           string   `json:"goods_no,omitempty"`
	Name              string   `json:"name"`
	Brand             string   `json:"brand"`
	Category          string   `json:"category"`
	Price             *float64 `json:"price"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"image_url,omitempty"`
	DetailImages      []string `json:"detail_images,omitempty"`
	PrimaryIngredient string   `json:"primary_ingredient,omitempty"`
	EffectsSummary    string   `json:"effects_summary,omitempty"`
	SecondaryBenefits []string `json:"secondary_benefits,omitempty"`
	RecommendedFor    []string `json:"recommended_for,omitempty"`
	NotRecommendedFor []string `json:"not_recommended_for,omitempty"`
	Notes             string   `json:"notes,omitempty"`

	DetailImageBenefits     []string `json:"detail_image_benefits,omitempty"`
	DetailImageIngredients  []string `json:"detail_image_ingredients,omitempty"`
	DetailImageCautions     []string `json:"detail_image_cautions,omitempty"`
	DetailImageInteractions []string `json:"detail_image_interactions,omitempty"`
	DetailImageText         string   `json:"detail_image_text,omitempty"`
}

// ProductMatch is one scored search hit, payload included.
type ProductMatch struct {
	ID      json.Number    `json:"id"`
	Score   float64        `json:"score"`
	Payload ProductPayload `json:"payload"`
}

// Filters are the post-normalization structured constraints of a search turn.
// A nil field means unconstrained.
type Filters struct {
	MaxPrice *float64 `json:"max_price"`
	MinPrice *float64 `json:"min_price"`
	Brand    *string  `json:"brand"`
	Category *string  `json:"category"`
}

// AnalyzedQuery is the structured form the query-analysis service returns.
// Ephemeral: produced once per search turn, not persisted beyond it.
type AnalyzedQuery struct {
	SemanticQuery string  `json:"semantic_query"`
	Filters       Filters `json:"filters"`
	Intent        string  `json:"intent"`
}
