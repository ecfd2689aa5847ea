package normalize

import (
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "spelling variant long form",
			input: "전자렌지 용기",
			want:  "전자레인지 용기",
		},
		{
			name:  "spelling variant short form",
			input: "가스렌지",
			want:  "가스레인지",
		},
		{
			name:  "ampersand becomes and",
			input: "Lock&Lock",
			want:  "lock and lock",
		},
		{
			name:  "punctuation stripped",
			input: "프라이팬 (28cm)!!",
			want:  "프라이팬 28cm",
		},
		{
			name:  "uppercase lowered",
			input: "BPA Free 텀블러",
			want:  "bpa free 텀블러",
		},
		{
			name:  "whitespace collapsed",
			input: "  보온병   500ml  ",
			want:  "보온병 500ml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"전자렌지 & 후라이팬",
		"Lock&Lock 밀폐용기 SET",
		"  보온/보냉 텀블러 500ml ",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		if once != twice {
			t.Errorf("NormalizeText not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeBrandKey(t *testing.T) {
	got := NormalizeBrandKey("Lock & Lock")
	if got != "lockandlock" {
		t.Errorf("NormalizeBrandKey = %q, want %q", got, "lockandlock")
	}
}

func TestResolveBrand(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		raw  string
		want string
	}{
		{"락앤락", "Lock&Lock"},
		{"Lock&Lock", "Lock&Lock"},
		{"LOCKNLOCK", "Lock&Lock"},
		{"무명브랜드", "무명브랜드"},
		{"", ""},
	}

	for _, tt := range tests {
		got := r.ResolveBrand(tt.raw)
		if got != tt.want {
			t.Errorf("ResolveBrand(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		raw  string
		want string
	}{
		{"후라이팬", "프라이팬"},
		{"프라이팬", "프라이팬"},
		{"반찬통", "밀폐용기"},
		{"전기포트", "주방소형가전"},
		{"침구", "침구"},
		{"", ""},
	}

	for _, tt := range tests {
		got := r.ResolveCategory(tt.raw)
		if got != tt.want {
			t.Errorf("ResolveCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestResolveCategoryIsFixedPoint(t *testing.T) {
	r := NewResolver(nil)
	for alias := range DefaultTable().CategoryAlias {
		once := r.ResolveCategory(alias)
		twice := r.ResolveCategory(once)
		if once != twice {
			t.Errorf("ResolveCategory(%q) not a fixed point: %q -> %q", alias, once, twice)
		}
	}
}

func TestLoadTableFallback(t *testing.T) {
	table := LoadTable("does-not-exist.json")
	if table == nil || len(table.BrandAlias) == 0 {
		t.Fatal("LoadTable should fall back to the default table")
	}
}
