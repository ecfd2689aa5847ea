package search

import (
	"strings"
	"testing"

	"ai-shopchat-be/pkg/normalize"
	"ai-shopchat-be/pkg/store"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuildQueryTextPlain(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	got := b.BuildQueryText("비타민 추천", store.Filters{}, "피로에 좋은 비타민 추천해줘")
	lines := strings.Split(got, "\n")

	// All three filter lines are empty and trailing here, so edge trimming
	// leaves just the name and description lines.
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines without filters, got %d: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "상품명: ") {
		t.Errorf("first line should be the name line, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "설명: ") {
		t.Errorf("second line should be the description line, got %q", lines[1])
	}
}

func TestBuildQueryTextFilterLines(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	filters := store.Filters{
		Brand:    strPtr("Lock&Lock"),
		Category: strPtr("텀블러"),
		MaxPrice: floatPtr(30000),
	}
	got := b.BuildQueryText("텀블러", filters, "텀블러 찾아줘")

	if !strings.Contains(got, "브랜드: Lock&Lock") {
		t.Errorf("missing brand line in %q", got)
	}
	if !strings.Contains(got, "카테고리: 텀블러") {
		t.Errorf("missing category line in %q", got)
	}
	if !strings.Contains(got, "가격: -30000") {
		t.Errorf("missing price line in %q", got)
	}
}

func TestBuildQueryTextPriceRange(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	filters := store.Filters{MinPrice: floatPtr(10000), MaxPrice: floatPtr(30000)}
	got := b.BuildQueryText("냄비", filters, "냄비")
	if !strings.Contains(got, "가격: 10000-30000") {
		t.Errorf("missing bounded price line in %q", got)
	}
}

func TestBuildQueryTextKeepsUnsetFilterLines(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	// With only a price filter the brand and category lines stay as interior
	// empty lines; only the outer edges of the block are trimmed.
	filters := store.Filters{MaxPrice: floatPtr(30000)}
	got := b.BuildQueryText("냄비", filters, "냄비 추천")
	lines := strings.Split(got, "\n")

	if len(lines) != 5 {
		t.Fatalf("expected the full 5-line template, got %d lines: %q", len(lines), got)
	}
	if lines[2] != "" || lines[3] != "" {
		t.Errorf("unset brand/category should be empty lines, got %q and %q", lines[2], lines[3])
	}
	if lines[4] != "가격: -30000" {
		t.Errorf("unexpected price line %q", lines[4])
	}
}

func TestBuildQueryTextCategorySynonymExpansion(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	filters := store.Filters{Category: strPtr("텀블러")}
	got := b.BuildQueryText("텀블러", filters, "텀블러 추천")

	nameLine := strings.SplitN(got, "\n", 2)[0]
	descLine := strings.Split(got, "\n")[1]

	// Synonyms appear on the name line only.
	for _, syn := range []string{"보온컵", "보냉컵"} {
		if !strings.Contains(nameLine, syn) {
			t.Errorf("name line missing synonym %q: %q", syn, nameLine)
		}
		if strings.Contains(descLine, syn) {
			t.Errorf("description line should stay unexpanded, found %q in %q", syn, descLine)
		}
	}
}

func TestBuildQueryTextAliasScanExpansion(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	// "후라이팬" in the base text is a known category alias; its canonical
	// form and synonyms should be appended even without a category filter.
	got := b.BuildQueryText("후라이팬", store.Filters{}, "후라이팬 싸게")
	nameLine := strings.SplitN(got, "\n", 2)[0]

	if !strings.Contains(nameLine, "프라이팬") {
		t.Errorf("name line missing canonical category %q: %q", "프라이팬", nameLine)
	}
}

func TestBuildQueryTextNoDuplicateTokens(t *testing.T) {
	b := NewQueryBuilder(normalize.NewResolver(nil))

	filters := store.Filters{Category: strPtr("프라이팬")}
	got := b.BuildQueryText("프라이팬 후라이팬", filters, "")
	nameLine := strings.TrimPrefix(strings.SplitN(got, "\n", 2)[0], "상품명: ")

	seen := make(map[string]int)
	for _, token := range strings.Fields(nameLine) {
		seen[token]++
	}
	for token, count := range seen {
		if count > 1 {
			t.Errorf("token %q duplicated %d times in name line %q", token, count, nameLine)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	if f := BuildFilter(store.Filters{}); f != nil {
		t.Errorf("empty filters should yield nil, got %+v", f)
	}

	filters := store.Filters{
		Brand:    strPtr("Lock&Lock"),
		Category: strPtr("텀블러"),
		MinPrice: floatPtr(10000),
		MaxPrice: floatPtr(30000),
	}
	f := BuildFilter(filters)
	if f == nil {
		t.Fatal("expected a filter")
	}
	if len(f.Must) != 3 {
		t.Fatalf("expected 3 must conditions, got %d", len(f.Must))
	}

	byKey := make(map[string]int)
	for _, cond := range f.Must {
		byKey[cond.Key]++
	}
	for _, key := range []string{"brand", "category", "price"} {
		if byKey[key] != 1 {
			t.Errorf("expected exactly one %q condition, got %d", key, byKey[key])
		}
	}
}
