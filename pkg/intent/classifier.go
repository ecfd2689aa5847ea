package intent

import "strings"

// Classification is the keyword-level reading of one inbound message.
type Classification struct {
	IsProductSearch bool
	IsFollowup      bool
	HasNeedKeywords bool
}

// Classifier matches inbound text against configured keyword lists.
// The lists are injected data; swapping this for a model-based classifier
// must not touch the conversation state machine.
type Classifier struct {
	productSearchKeywords []string
	followupKeywords      []string
	needKeywords          []string
	negativeAnswers       []string
}

func NewClassifier(productSearch, followup, need, negative []string) *Classifier {
	return &Classifier{
		productSearchKeywords: productSearch,
		followupKeywords:      followup,
		needKeywords:          need,
		negativeAnswers:       negative,
	}
}

// Classify runs all substring keyword lists against the lowercased message.
func (c *Classifier) Classify(message string) Classification {
	text := strings.ToLower(message)
	return Classification{
		IsProductSearch: containsAny(text, c.productSearchKeywords),
		IsFollowup:      containsAny(text, c.followupKeywords),
		HasNeedKeywords: containsAny(text, c.needKeywords),
	}
}

// IsNegativeAnswer reports whether the trimmed message matches a configured
// negative/skip answer, exactly or as a substring.
func (c *Classifier) IsNegativeAnswer(message string) bool {
	raw := strings.TrimSpace(strings.ToLower(message))
	for _, v := range c.negativeAnswers {
		if raw == v || strings.Contains(raw, v) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
