package intent

import "testing"

func testClassifier() *Classifier {
	return NewClassifier(
		[]string{"추천", "영양제", "찾아줘"},
		[]string{"효능", "부작용", "어때"},
		[]string{"피로", "피부", "면역"},
		[]string{"아니", "없어", "no"},
	)
}

func TestClassify(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name          string
		message       string
		productSearch bool
		followup      bool
		need          bool
	}{
		{
			name:          "plain search",
			message:       "영양제 추천해줘",
			productSearch: true,
		},
		{
			name:     "followup only",
			message:  "이거 효능이 뭐야?",
			followup: true,
		},
		{
			name:          "search with need keyword",
			message:       "피로에 좋은 영양제 추천해줘",
			productSearch: true,
			need:          true,
		},
		{
			name:    "small talk",
			message: "안녕하세요",
		},
		{
			name:          "search and followup together",
			message:       "추천해준 제품 부작용 있어?",
			productSearch: true,
			followup:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message)
			if got.IsProductSearch != tt.productSearch {
				t.Errorf("IsProductSearch = %v, want %v", got.IsProductSearch, tt.productSearch)
			}
			if got.IsFollowup != tt.followup {
				t.Errorf("IsFollowup = %v, want %v", got.IsFollowup, tt.followup)
			}
			if got.HasNeedKeywords != tt.need {
				t.Errorf("HasNeedKeywords = %v, want %v", got.HasNeedKeywords, tt.need)
			}
		})
	}
}

func TestIsNegativeAnswer(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		message string
		want    bool
	}{
		{"아니", true},
		{"아니요 괜찮아요", true},
		{"  NO  ", true},
		{"없어요", true},
		{"피로 회복이요", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.IsNegativeAnswer(tt.message); got != tt.want {
			t.Errorf("IsNegativeAnswer(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
