package search

import (
	"ai-shopchat-be/pkg/qdrant"
	"ai-shopchat-be/pkg/store"
)

// BuildFilter maps normalized filters onto a Qdrant must-clause set:
// brand equality, category equality, price range. Nil fields contribute
// nothing; an empty predicate set yields a nil filter.
func BuildFilter(filters store.Filters) *qdrant.Filter {
	var must []qdrant.Condition

	if filters.Brand != nil {
		must = append(must, qdrant.Condition{
			Key:   "brand",
			Match: &qdrant.Match{Value: *filters.Brand},
		})
	}

	if filters.Category != nil {
		must = append(must, qdrant.Condition{
			Key:   "category",
			Match: &qdrant.Match{Value: *filters.Category},
		})
	}

	if filters.MinPrice != nil || filters.MaxPrice != nil {
		must = append(must, qdrant.Condition{
			Key: "price",
			Range: &qdrant.Range{
				Gte: filters.MinPrice,
				Lte: filters.MaxPrice,
			},
		})
	}

	if len(must) == 0 {
		return nil
	}
	return &qdrant.Filter{Must: must}
}
