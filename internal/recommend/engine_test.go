package recommend

import (
	"testing"

	"skincare-backend/internal/catalog"
)

func product(name string, tags ...string) catalog.Product {
	anyTags := make([]any, len(tags))
	for i, tag := range tags {
		anyTags[i] = tag
	}
	return catalog.Product{"name": name, "concern_tags": anyTags}
}

func names(products []catalog.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name()
	}
	return out
}

func TestRecommendScoringWithDrynessBonus(t *testing.T) {
	catalogue := []catalog.Product{
		product("A", "dryness"),
		product("B", "acne", "dryness"),
	}
	issues := []string{"dryness", "acne"}
	answers := map[string]any{"dryness": "3"}

	// A = 1 tag match + 3 bonus = 4, B = 2 tag matches + 3 bonus = 5.
	got := names(Recommend(issues, answers, catalogue, 5))
	if len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Fatalf("expected [B A], got %v", got)
	}
}

func TestRecommendStableUnderTies(t *testing.T) {
	catalogue := []catalog.Product{
		product("First", "acne"),
		product("Second", "acne"),
		product("Third", "acne"),
		product("Unmatched"),
	}

	got := names(Recommend([]string{"acne"}, nil, catalogue, 5))
	want := []string{"First", "Second", "Third", "Unmatched"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order broken: expected %v, got %v", want, got)
		}
	}
}

func TestRecommendLengthIsMinOfLimitAndCatalogue(t *testing.T) {
	catalogue := []catalog.Product{
		product("A", "dryness"),
		product("B", "acne"),
		product("C", "oily"),
	}

	cases := []struct {
		limit int
		want  int
	}{
		{5, 3},
		{2, 2},
		{0, 0},
		{-1, 0},
	}
	for _, tc := range cases {
		got := Recommend([]string{"dryness"}, nil, catalogue, tc.limit)
		if len(got) != tc.want {
			t.Fatalf("limit %d: expected %d products, got %d", tc.limit, tc.want, len(got))
		}
	}
}

func TestRecommendMalformedDrynessAnswers(t *testing.T) {
	catalogue := []catalog.Product{
		product("A", "dryness"),
		product("B", "acne"),
	}
	issues := []string{"acne"}

	cases := []struct {
		name    string
		answers map[string]any
	}{
		{"non_numeric_string", map[string]any{"dryness": "abc"}},
		{"null_value", map[string]any{"dryness": nil}},
		{"absent_key", map[string]any{}},
		{"nil_map", nil},
		{"bool_value", map[string]any{"dryness": true}},
		{"decimal_string", map[string]any{"dryness": "3.5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(Recommend(issues, tc.answers, catalogue, 5))
			// B matches acne and must rank first; A gets no bonus.
			if got[0] != "B" {
				t.Fatalf("expected B first, got %v", got)
			}
		})
	}
}

func TestRecommendNumericAnswerTypes(t *testing.T) {
	catalogue := []catalog.Product{
		product("Plain", "acne"),
		product("Dry", "dryness"),
	}
	issues := []string{"acne"}

	// Plain scores 1 on the tag match; a dryness bonus of 2 or more must
	// put Dry on top despite matching no issue.
	for name, answer := range map[string]any{
		"string": "4",
		"float":  float64(4),
		"int":    4,
	} {
		t.Run(name, func(t *testing.T) {
			got := names(Recommend(issues, map[string]any{"dryness": answer}, catalogue, 5))
			if got[0] != "Dry" {
				t.Fatalf("expected Dry first with %s answer, got %v", name, got)
			}
		})
	}
}

func TestRecommendEmptyInputs(t *testing.T) {
	if got := Recommend(nil, nil, nil, 5); len(got) != 0 {
		t.Fatalf("empty catalogue must yield empty result, got %v", got)
	}

	catalogue := []catalog.Product{
		product("A", "dryness"),
		product("B", "acne"),
	}
	got := names(Recommend(nil, nil, catalogue, 5))
	// No issues: all scores zero, catalogue order preserved.
	if got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected catalogue order, got %v", got)
	}
}
