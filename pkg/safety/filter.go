package safety

import (
	"strings"

	"ai-shopchat-be/pkg/store"
)

// Filter removes product matches that are unsafe for the user's stated
// situation, based on caution keywords found in their own words.
type Filter struct {
	keywords              []string
	pregnancyKeywords     []string
	breastfeedingKeywords []string
	childKeywords         []string

	pregnancyMessage     string
	breastfeedingMessage string
	childMessage         string
	defaultMessage       string
}

type Config struct {
	Keywords              []string
	PregnancyKeywords     []string
	BreastfeedingKeywords []string
	ChildKeywords         []string

	PregnancyMessage     string
	BreastfeedingMessage string
	ChildMessage         string
	DefaultMessage       string
}

func NewFilter(cfg Config) *Filter {
	return &Filter{
		keywords:              cfg.Keywords,
		pregnancyKeywords:     cfg.PregnancyKeywords,
		breastfeedingKeywords: cfg.BreastfeedingKeywords,
		childKeywords:         cfg.ChildKeywords,
		pregnancyMessage:      cfg.PregnancyMessage,
		breastfeedingMessage:  cfg.BreastfeedingMessage,
		childMessage:          cfg.ChildMessage,
		defaultMessage:        cfg.DefaultMessage,
	}
}

// ExtractCautionKeywords returns the configured risk terms present in the
// user's text, in list order.
func (f *Filter) ExtractCautionKeywords(text string) []string {
	raw := strings.ToLower(text)
	var matched []string
	for _, k := range f.keywords {
		if strings.Contains(raw, k) {
			matched = append(matched, k)
		}
	}
	return matched
}

// IsHighRisk reports whether a product declares any of the caution keywords
// in its not-recommended-for list. With no caution keywords, nothing is
// high-risk.
func IsHighRisk(payload store.ProductPayload, cautionKeywords []string) bool {
	if len(cautionKeywords) == 0 || len(payload.NotRecommendedFor) == 0 {
		return false
	}
	joined := strings.ToLower(strings.Join(payload.NotRecommendedFor, " "))
	for _, k := range cautionKeywords {
		if strings.Contains(joined, k) {
			return true
		}
	}
	return false
}

// Apply drops every high-risk product from the result set.
func (f *Filter) Apply(results []store.ProductMatch, cautionKeywords []string) []store.ProductMatch {
	safe := make([]store.ProductMatch, 0, len(results))
	for _, item := range results {
		if !IsHighRisk(item.Payload, cautionKeywords) {
			safe = append(safe, item)
		}
	}
	return safe
}

// NoRecommendationMessage picks the caution reply when every retrieved
// product was dropped. Priority: pregnancy > breastfeeding > child > generic.
func (f *Filter) NoRecommendationMessage(cautionKeywords []string) string {
	switch {
	case matchesAny(cautionKeywords, f.pregnancyKeywords):
		return f.pregnancyMessage
	case matchesAny(cautionKeywords, f.breastfeedingKeywords):
		return f.breastfeedingMessage
	case matchesAny(cautionKeywords, f.childKeywords):
		return f.childMessage
	default:
		return f.defaultMessage
	}
}

func matchesAny(keywords, group []string) bool {
	for _, k := range keywords {
		for _, g := range group {
			if k == g {
				return true
			}
		}
	}
	return false
}
