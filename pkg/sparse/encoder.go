package sparse

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"ai-shopchat-be/pkg/normalize"
)

// HashBuckets is the fixed sparse dimensionality. Token hashes are reduced
// modulo this bucket count; collisions are acceptable and additive.
const HashBuckets = 1 << 18

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Vector is a sparse lexical vector: Indices strictly ascending and unique,
// Values the parallel L2-normalized weights.
type Vector struct {
	Indices []uint32  `json:"indices"`
	Values  []float64 `json:"values"`
}

// IsEmpty reports whether the vector carries no terms.
func (v Vector) IsEmpty() bool {
	return len(v.Indices) == 0
}

// Tokenize normalizes and splits text, dropping purely ASCII-alphanumeric
// tokens shorter than 2 runes. Short Hangul tokens are kept.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	fields := splitNormalized(text)
	tokens := fields[:0]
	for _, token := range fields {
		if utf8.RuneCountInString(token) < 2 && isASCIIAlnumOnly(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func splitNormalized(text string) []string {
	normalized := normalize.NormalizeText(text)
	if normalized == "" {
		return nil
	}
	// NormalizeText already collapsed runs of whitespace to single spaces.
	return strings.Split(normalized, " ")
}

func isASCIIAlnumOnly(token string) bool {
	for _, r := range token {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return token != ""
}

// hashToken is a 32-bit FNV-1a variant folded over runes, matching the
// catalog side of the index so query and document terms land in the same
// buckets.
func hashToken(token string) uint32 {
	hash := uint32(fnvOffset32)
	for _, r := range token {
		hash ^= uint32(r)
		hash *= fnvPrime32
	}
	return hash
}

// Encode builds the deterministic hashed term-frequency vector for text:
// bucket = hash(token) mod HashBuckets, weight = 1 + ln(tf), L2-normalized.
// Empty or all-filtered text yields an empty vector.
func Encode(text string) Vector {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Vector{}
	}

	freq := make(map[uint32]int, len(tokens))
	for _, token := range tokens {
		freq[hashToken(token)%HashBuckets]++
	}

	indices := make([]uint32, 0, len(freq))
	for idx := range freq {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	values := make([]float64, len(indices))
	var norm float64
	for i, idx := range indices {
		value := 1 + math.Log(float64(freq[idx]))
		values[i] = value
		norm += value * value
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		return Vector{}
	}
	for i := range values {
		values[i] /= norm
	}

	return Vector{Indices: indices, Values: values}
}
