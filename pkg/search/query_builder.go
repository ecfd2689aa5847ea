package search

import (
	"fmt"
	"strconv"
	"strings"

	"ai-shopchat-be/pkg/normalize"
	"ai-shopchat-be/pkg/sparse"
	"ai-shopchat-be/pkg/store"
)

// QueryBuilder composes the text sent to the embedding service and the
// lexical encoder, expanding the normalized base with known synonyms.
type QueryBuilder struct {
	resolver *normalize.Resolver
}

func NewQueryBuilder(resolver *normalize.Resolver) *QueryBuilder {
	return &QueryBuilder{resolver: resolver}
}

// BuildQueryText returns the structured query block: an expanded name line,
// an unexpanded description line, then the brand, category and price lines,
// empty when unset. The five-line template is fixed so the query-side text
// matches the document text the index was built with; only the outer edges
// are trimmed. The expanded/unexpanded duplication biases lexical and
// semantic matching differently.
func (b *QueryBuilder) BuildQueryText(semanticQuery string, filters store.Filters, userMessage string) string {
	base := normalize.NormalizeText(semanticQuery + " " + userMessage)
	expanded := b.expandQueryText(base, filters)

	brandLine := ""
	if filters.Brand != nil {
		brandLine = "브랜드: " + *filters.Brand
	}
	categoryLine := ""
	if filters.Category != nil {
		categoryLine = "카테고리: " + *filters.Category
	}
	priceLine := ""
	if filters.MinPrice != nil || filters.MaxPrice != nil {
		priceLine = fmt.Sprintf("가격: %s-%s", formatPrice(filters.MinPrice), formatPrice(filters.MaxPrice))
	}

	lines := []string{
		"상품명: " + expanded,
		"설명: " + base,
		brandLine,
		categoryLine,
		priceLine,
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// expandQueryText appends synonym tokens for the resolved category and
// brand, plus the canonical name and synonyms of any category alias the
// user named directly, skipping tokens already present. First-seen order.
func (b *QueryBuilder) expandQueryText(base string, filters store.Filters) string {
	baseTokens := make(map[string]bool)
	orderedBase := sparse.Tokenize(base)
	for _, token := range orderedBase {
		baseTokens[token] = true
	}

	var extras []string
	seen := make(map[string]bool)
	addAll := func(tokens []string) {
		for _, token := range tokens {
			t := normalize.NormalizeText(token)
			if t == "" || baseTokens[t] || seen[t] {
				continue
			}
			seen[t] = true
			extras = append(extras, t)
		}
	}

	if filters.Category != nil {
		addAll(b.resolver.CategorySynonyms(*filters.Category))
	}
	if filters.Brand != nil {
		addAll(b.resolver.BrandSynonyms(*filters.Brand))
	}

	for _, token := range orderedBase {
		if canonical, ok := b.resolver.CategoryAlias(token); ok {
			addAll(append([]string{canonical}, b.resolver.CategorySynonyms(canonical)...))
		}
	}

	if len(extras) == 0 {
		return base
	}
	return strings.TrimSpace(base + " " + strings.Join(extras, " "))
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
