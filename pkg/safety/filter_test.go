package safety

import (
	"reflect"
	"testing"

	"ai-shopchat-be/pkg/store"
)

func testFilter() *Filter {
	return NewFilter(Config{
		Keywords:              []string{"임신", "임산부", "수유", "어린이"},
		PregnancyKeywords:     []string{"임신", "임산부"},
		BreastfeedingKeywords: []string{"수유"},
		ChildKeywords:         []string{"어린이"},
		PregnancyMessage:      "pregnancy",
		BreastfeedingMessage:  "breastfeeding",
		ChildMessage:          "child",
		DefaultMessage:        "default",
	})
}

func productWith(notRecommended ...string) store.ProductMatch {
	return store.ProductMatch{Payload: store.ProductPayload{
		Name:              "비타민C",
		NotRecommendedFor: notRecommended,
	}}
}

func TestExtractCautionKeywords(t *testing.T) {
	f := testFilter()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "none",
			text: "피로에 좋은 비타민 추천해줘",
			want: nil,
		},
		{
			name: "single",
			text: "임신 중인데 먹어도 되나요",
			want: []string{"임신"},
		},
		{
			name: "list order preserved",
			text: "수유 중이고 임신 경험 있어요",
			want: []string{"임신", "수유"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.ExtractCautionKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCautionKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsHighRisk(t *testing.T) {
	if IsHighRisk(productWith("임산부").Payload, nil) {
		t.Error("no caution keywords means nothing is high-risk")
	}
	if IsHighRisk(productWith().Payload, []string{"임신"}) {
		t.Error("empty not_recommended_for is never high-risk")
	}
	if !IsHighRisk(productWith("임산부 및 수유부").Payload, []string{"임산부"}) {
		t.Error("keyword in not_recommended_for should be high-risk")
	}
	if IsHighRisk(productWith("카페인 민감자").Payload, []string{"임신"}) {
		t.Error("unrelated not_recommended_for should not be high-risk")
	}
}

func TestApply(t *testing.T) {
	f := testFilter()
	results := []store.ProductMatch{
		productWith("임산부"),
		productWith("카페인 민감자"),
		productWith(),
	}

	safe := f.Apply(results, []string{"임산부"})
	if len(safe) != 2 {
		t.Fatalf("expected 2 safe products, got %d", len(safe))
	}
	for _, item := range safe {
		if IsHighRisk(item.Payload, []string{"임산부"}) {
			t.Errorf("high-risk product survived: %+v", item.Payload)
		}
	}
}

func TestNoRecommendationMessagePriority(t *testing.T) {
	f := testFilter()

	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{"pregnancy wins over breastfeeding", []string{"수유", "임신"}, "pregnancy"},
		{"breastfeeding wins over child", []string{"어린이", "수유"}, "breastfeeding"},
		{"child alone", []string{"어린이"}, "child"},
		{"unmatched falls back", []string{"청소년기"}, "default"},
		{"empty falls back", nil, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.NoRecommendationMessage(tt.keywords)
			if got != tt.want {
				t.Errorf("NoRecommendationMessage(%v) = %q, want %q", tt.keywords, got, tt.want)
			}
		})
	}
}
