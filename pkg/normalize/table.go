package normalize

import (
	"encoding/json"
	"os"
)

// Table is the alias/synonym table built offline by the ingestion pipeline.
// Keys of BrandAlias are normalized brand keys (space-stripped); keys of
// CategoryAlias are normalized category text. Read-only after load.
type Table struct {
	BrandAlias       map[string]string   `json:"brand_alias"`
	CategoryAlias    map[string]string   `json:"category_alias"`
	BrandSynonyms    map[string][]string `json:"brand_synonyms"`
	CategorySynonyms map[string][]string `json:"category_synonyms"`
}

// LoadTable reads the normalization JSON file. A missing or malformed file
// falls back to the built-in default table.
func LoadTable(path string) *Table {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultTable()
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return DefaultTable()
	}

	def := DefaultTable()
	if table.BrandAlias == nil {
		table.BrandAlias = def.BrandAlias
	}
	if table.CategoryAlias == nil {
		table.CategoryAlias = def.CategoryAlias
	}
	if table.BrandSynonyms == nil {
		table.BrandSynonyms = def.BrandSynonyms
	}
	if table.CategorySynonyms == nil {
		table.CategorySynonyms = def.CategorySynonyms
	}
	return &table
}

// DefaultTable is the built-in table used when no normalization file exists.
func DefaultTable() *Table {
	return &Table{
		BrandAlias: map[string]string{
			"락앤락":         "Lock&Lock",
			"locknlock":   "Lock&Lock",
			"lockandlock": "Lock&Lock",
		},
		BrandSynonyms: map[string][]string{
			"Lock&Lock": {"락앤락", "locknlock", "lock&lock"},
		},
		CategoryAlias: map[string]string{
			"후라이팬":   "프라이팬",
			"프라이팬":   "프라이팬",
			"팬":      "프라이팬",
			"텀블러":    "텀블러",
			"보온컵":    "텀블러",
			"보냉컵":    "텀블러",
			"보온병":    "보온병",
			"보냉병":    "보온병",
			"도시락":    "도시락",
			"도시락통":   "도시락",
			"물병":     "물병",
			"물통":     "물병",
			"밀폐용기":   "밀폐용기",
			"반찬통":    "밀폐용기",
			"전기포트":   "주방소형가전",
			"전기주전자":  "주방소형가전",
			"토스터기":   "주방소형가전",
			"에어프라이어": "주방소형가전",
			"블렌더":    "주방소형가전",
			"전기밥솥":   "주방소형가전",
			"전기그릴":   "주방소형가전",
			"커피메이커":  "주방소형가전",
			"멀티쿠커":   "주방소형가전",
			"전기찜기":   "주방소형가전",
		},
		CategorySynonyms: map[string][]string{
			"밀폐용기":   {"반찬통", "보관용기", "식재료통", "음식보관"},
			"텀블러":    {"보온컵", "보냉컵", "휴대컵", "텀블러컵"},
			"보온병":    {"보냉병", "물통", "텀블러"},
			"도시락":    {"도시락통", "런치박스", "도시락용기"},
			"물병":     {"물통", "보틀"},
			"프라이팬":   {"후라이팬", "팬", "코팅팬"},
			"냄비":     {"스텐냄비", "조리냄비", "냄비세트"},
			"주방소형가전": {"주방가전", "소형가전", "주방전기"},
		},
	}
}
