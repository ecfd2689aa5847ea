package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// IntentPolicy holds the flat keyword lists driving intent classification.
// Kept as injected data so the classifier stays swappable for a model-based
// implementation without touching the state machine.
type IntentPolicy struct {
	ProductSearchKeywords []string
	FollowupKeywords      []string
	NeedKeywords          []string
	NegativeAnswers       []string
}

// CautionPolicy holds the risk-term list and the caution replies selected
// when every retrieved product is filtered out as high-risk.
type CautionPolicy struct {
	Keywords              []string
	PregnancyKeywords     []string
	BreastfeedingKeywords []string
	ChildKeywords         []string

	PregnancyMessage     string
	BreastfeedingMessage string
	ChildMessage         string
	DefaultMessage       string
}

// ChatPolicy is the full conversational policy: intent lists, clarifying
// questions, and fixed response texts.
type ChatPolicy struct {
	Intent  IntentPolicy
	Caution CautionPolicy

	NeedQuestionStage1 string
	NeedQuestionStage2 string

	NeedOnlyPrompt  string
	NoResults       string
	AskProductName  string
	NeedMissing     string
	RecommendPrompt string

	SearchFailed string

	// ResetNeedStageOnNegative controls whether a negative answer during the
	// first clarification question also returns the session to idle. The
	// shipped behavior keeps the stage as-is; the intended terminal behavior
	// is still unconfirmed.
	ResetNeedStageOnNegative bool
}

// DefaultChatPolicy mirrors the production policy tables.
func DefaultChatPolicy() *ChatPolicy {
	return &ChatPolicy{
		Intent: IntentPolicy{
			ProductSearchKeywords: []string{
				"추천", "영양제", "보조제", "비타민", "유산균", "오메가",
				"상품", "제품", "찾아줘", "알려줘", "골라줘", "사고 싶", "구매",
			},
			FollowupKeywords: []string{
				"효능", "효과", "부작용", "어때", "어떤가요", "먹어도 되",
			},
			NeedKeywords: []string{
				"피로", "피부", "면역", "관절", "수면", "스트레스",
				"혈당", "눈 건강", "장 건강", "때문에", "위해",
			},
			NegativeAnswers: []string{
				"아니", "아니요", "아뇨", "없어", "없습니다", "됐어", "no",
			},
		},
		Caution: CautionPolicy{
			Keywords: []string{
				"임신", "임산부", "수유", "수유부", "어린이", "소아", "청소년",
			},
			PregnancyKeywords:     []string{"임신", "임산부"},
			BreastfeedingKeywords: []string{"수유", "수유부"},
			ChildKeywords:         []string{"어린이", "소아", "청소년"},

			PregnancyMessage:     "임신 중에는 섭취에 주의가 필요한 성분이 있어 추천이 어려워요. 전문의와 상담 후 섭취를 결정해주세요.",
			BreastfeedingMessage: "수유 중에는 섭취에 주의가 필요한 성분이 있어 추천이 어려워요. 전문의와 상담 후 섭취를 결정해주세요.",
			ChildMessage:         "어린이·청소년은 섭취 기준이 달라 추천이 어려워요. 연령에 맞는 제품인지 전문가와 확인해주세요.",
			DefaultMessage:       "말씀해주신 조건에서는 안전하게 추천드릴 수 있는 상품을 찾지 못했어요.",
		},

		NeedQuestionStage1: "어떤 건강 고민이나 목적 때문에 찾으시는지 알려주시겠어요? (예: 피로 회복, 피부 개선, 면역력)",
		NeedQuestionStage2: "연령대나 성별 등 참고할 정보가 있다면 알려주세요. (예: 30대 여성)",

		NeedOnlyPrompt:  "괜찮아요. 찾으시는 상품이나 고민이 생기면 편하게 말씀해주세요.",
		NoResults:       "조건에 맞는 상품을 찾지 못했어요. 다른 조건으로 다시 검색해보시겠어요?",
		AskProductName:  "어떤 상품에 대한 질문인지 상품명을 알려주시겠어요?",
		NeedMissing:     "이전에 찾아드린 상품이 없어요. 먼저 원하시는 상품을 검색해주시겠어요?",
		RecommendPrompt: "찾으시는 상품이나 건강 고민을 말씀해주시면 맞는 상품을 추천해드릴게요.",

		SearchFailed: "검색 실패",

		ResetNeedStageOnNegative: false,
	}
}
