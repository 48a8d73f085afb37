package recommend

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"skincare-backend/internal/catalog"
)

// Recommend ranks products by relevance to the detected issues and answers,
// returning at most limit products. The sort is stable: products with equal
// scores keep their catalogue order. Never fails; malformed answers simply
// contribute nothing.
func Recommend(issues []string, answers map[string]any, products []catalog.Product, limit int) []catalog.Product {
	if limit < 0 {
		limit = 0
	}

	issueSet := make(map[string]struct{}, len(issues))
	for _, issue := range issues {
		issueSet[issue] = struct{}{}
	}
	bonus, hasBonus := drynessBonus(answers)

	scores := make([]int, len(products))
	for i, p := range products {
		score := 0
		hasDryness := false
		for _, tag := range p.ConcernTags() {
			if _, ok := issueSet[tag]; ok {
				score++
			}
			if tag == "dryness" {
				hasDryness = true
			}
		}
		if hasDryness && hasBonus {
			// Raw answer magnitude added on top of the tag overlap;
			// preserved as-is for compatibility with existing clients.
			score += bonus
		}
		scores[i] = score
	}

	order := make([]int, len(products))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if limit > len(products) {
		limit = len(products)
	}
	out := make([]catalog.Product, 0, limit)
	for _, idx := range order[:limit] {
		out = append(out, products[idx])
	}
	return out
}

// drynessBonus coerces answers["dryness"] to an integer. Any value that
// does not coerce yields no bonus, never an error.
func drynessBonus(answers map[string]any) (int, bool) {
	raw, ok := answers["dryness"]
	if !ok || raw == nil {
		return 0, false
	}
	switch val := raw.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(math.Trunc(val)), true
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i), true
		}
		if f, err := val.Float64(); err == nil {
			return int(math.Trunc(f)), true
		}
		return 0, false
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
