package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"testing"

	"ai-shopchat-be/pkg/llm"
	"ai-shopchat-be/pkg/store"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "비타민C 1000mg", "비타민C 1000mg"},
		{"tags removed", "<p>고함량 <b>비타민</b></p>", "고함량 비타민"},
		{"whitespace collapsed", "<div>\n  성분   안내\n</div>", "성분 안내"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractImageURLs(t *testing.T) {
	html := `<div><img src="https://cdn.example.com/a.jpg" alt="x">` +
		`<IMG SRC='https://cdn.example.com/b.png'/></div>`
	urls := ExtractImageURLs(html)
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://cdn.example.com/a.jpg" || urls[1] != "https://cdn.example.com/b.png" {
		t.Errorf("unexpected urls %v", urls)
	}

	if got := ExtractImageURLs("no images here"); len(got) != 0 {
		t.Errorf("expected no urls, got %v", got)
	}
}

func TestMapGoodsToPoint(t *testing.T) {
	goods := GoodsItem{
		GoodsNo:          json.Number("12345"),
		GoodsNm:          "멀티비타민",
		Brand:            "락앤락",
		CateNm:           "비타민",
		GoodsPrice:       json.Number("25900"),
		GoodsDescription: `<p>하루 한 정</p><img src="https://cdn.example.com/detail.jpg">`,
		ImageURL:         "https://cdn.example.com/main.jpg",
	}

	point := MapGoodsToPoint(goods)

	if id, ok := point.ID.(int64); !ok || id != 12345 {
		t.Errorf("numeric goodsNo should become int64 id, got %v", point.ID)
	}
	if point.Payload.Name != "멀티비타민" || point.Payload.GoodsNo != "12345" {
		t.Errorf("unexpected payload %+v", point.Payload)
	}
	if point.Payload.Price == nil || *point.Payload.Price != 25900 {
		t.Errorf("price = %v, want 25900", point.Payload.Price)
	}
	if point.Payload.Description != "하루 한 정" {
		t.Errorf("description = %q", point.Payload.Description)
	}
	if len(point.Payload.DetailImages) != 1 {
		t.Errorf("detail images = %v", point.Payload.DetailImages)
	}
}

func TestMapGoodsToPointNonNumericID(t *testing.T) {
	point := MapGoodsToPoint(GoodsItem{GoodsNo: json.Number(""), GoodsNm: "상품"})
	if _, ok := point.ID.(string); !ok {
		t.Errorf("non-numeric goodsNo should get a generated string id, got %T", point.ID)
	}
}

func TestBuildDocumentText(t *testing.T) {
	price := 25900.0
	payload := store.ProductPayload{
		Name:              "멀티비타민",
		Brand:             "락앤락",
		Category:          "비타민",
		Price:             &price,
		Description:       "하루 한 정",
		PrimaryIngredient: "비타민C",
		EffectsSummary:    "피로 회복에 도움",
		SecondaryBenefits: []string{"항산화", "면역"},
		RecommendedFor:    []string{"직장인"},
		NotRecommendedFor: []string{"임산부"},
		Notes:             "과다 섭취 주의",
	}

	got := BuildDocumentText(payload)
	lines := strings.Split(got, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 labeled lines, got %d:\n%s", len(lines), got)
	}

	wantPrefixes := []string{
		"상품명: 멀티비타민",
		"브랜드: 락앤락",
		"카테고리: 비타민",
		"가격: 25900",
		"설명: 하루 한 정",
		"대표성분: 비타민C",
		"효능요약: 피로 회복에 도움",
		"부수효능: 항산화 면역",
		"추천대상: 직장인",
		"비추천대상: 임산부",
		"주의사항: 과다 섭취 주의",
		"상세이미지텍스트:",
	}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestBuildDetailImageText(t *testing.T) {
	if got := BuildDetailImageText(nil); got != "" {
		t.Errorf("empty extraction should yield empty text, got %q", got)
	}

	got := BuildDetailImageText([]ImageData{
		{Summary: "요약1", Benefits: []string{"효능A", "효능B"}},
		{Summary: "요약2", Dosage: "하루 1정"},
	})
	if !strings.Contains(got, "상세이미지#1") || !strings.Contains(got, "상세이미지#2") {
		t.Errorf("missing image block headers in %q", got)
	}
	if !strings.Contains(got, "이미지효능: 효능A 효능B") {
		t.Errorf("missing benefits line in %q", got)
	}
	if !strings.Contains(got, "이미지섭취방법: 하루 1정") {
		t.Errorf("missing dosage line in %q", got)
	}
}

func TestMergeDistinct(t *testing.T) {
	got := mergeDistinct([]string{"면역", "항산화"}, []string{" 면역 ", "수면", "", "항산화"})
	want := []string{"면역", "항산화", "수면"}
	if len(got) != len(want) {
		t.Fatalf("mergeDistinct = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mergeDistinct[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

type stubLLM struct {
	content string
	usage   llm.Usage
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Result, error) {
	return &llm.Result{Content: s.content, Usage: s.usage}, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (*llm.Result, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestExtractNameInsightsLogsTokenUsage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPipeline(
		&stubLLM{
			content: `{"primary_ingredient":"비타민C","effects_summary":"항산화"}`,
			usage:   llm.Usage{PromptTokens: 120, CompletionTokens: 40, TotalTokens: 160},
		},
		nil, nil, nil, "products", "", log.New(&buf, "", 0),
	)

	insights, err := p.extractNameInsights(context.Background(), "고함량 비타민C")
	if err != nil {
		t.Fatal(err)
	}
	if insights.PrimaryIngredient != "비타민C" {
		t.Errorf("PrimaryIngredient = %q", insights.PrimaryIngredient)
	}
	if !strings.Contains(buf.String(), "[tokens] name insights: prompt=120 completion=40 total=160") {
		t.Errorf("missing token usage log, got %q", buf.String())
	}
}
