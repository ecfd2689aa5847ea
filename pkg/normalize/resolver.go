package normalize

import (
	"strings"
	"unicode"
)

// spellingReplacer maps known spelling variants to their canonical form
// before any other normalization runs. Order matters: the longer variant
// must win over its suffix.
var spellingReplacer = strings.NewReplacer(
	"전자렌지", "전자레인지",
	"렌지", "레인지",
)

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NormalizeText canonicalizes free text for matching: spelling variants,
// "&" to "and", lowercase, everything outside ASCII alphanumerics / Hangul
// syllables / whitespace stripped, whitespace collapsed. Idempotent.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	out := spellingReplacer.Replace(text)
	out = strings.ReplaceAll(out, "&", " and ")

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		switch {
		case isASCIIAlnum(r):
			b.WriteRune(unicode.ToLower(r))
		case isHangulSyllable(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeBrandKey is NormalizeText with all whitespace removed.
// Brand alias keys are space-insensitive; category keys are not.
func NormalizeBrandKey(text string) string {
	return strings.Join(strings.Fields(NormalizeText(text)), "")
}

// Resolver answers brand/category canonicalization and synonym lookups
// against a loaded alias table. Read-only after construction.
type Resolver struct {
	table *Table
}

func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	return &Resolver{table: table}
}

// ResolveBrand maps a raw brand to its canonical form. Unknown brands are
// returned unchanged; resolution never fails for non-empty input.
func (r *Resolver) ResolveBrand(raw string) string {
	if raw == "" {
		return ""
	}
	if canonical, ok := r.table.BrandAlias[NormalizeBrandKey(raw)]; ok {
		return canonical
	}
	return raw
}

// ResolveCategory maps a raw category to its canonical form, keyed by the
// normalized (space-preserving) text.
func (r *Resolver) ResolveCategory(raw string) string {
	if raw == "" {
		return ""
	}
	if canonical, ok := r.table.CategoryAlias[NormalizeText(raw)]; ok {
		return canonical
	}
	return raw
}

// CategoryAlias returns the canonical category for an alias key, if known.
func (r *Resolver) CategoryAlias(key string) (string, bool) {
	canonical, ok := r.table.CategoryAlias[key]
	return canonical, ok
}

// BrandSynonyms returns the known synonym list for a canonical brand.
func (r *Resolver) BrandSynonyms(canonical string) []string {
	return r.table.BrandSynonyms[canonical]
}

// CategorySynonyms returns the known synonym list for a canonical category.
func (r *Resolver) CategorySynonyms(canonical string) []string {
	return r.table.CategorySynonyms[canonical]
}
