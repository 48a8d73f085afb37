package questionnaire

import (
	"reflect"
	"testing"
)

func TestGenerateAllKnownTags(t *testing.T) {
	issues := []string{"dryness", "acne", "redness", "dullness", "oily"}
	questions := Generate(issues)

	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != issues[i] {
			t.Fatalf("question %d: expected id %q, got %q", i, issues[i], q.ID)
		}
	}

	acne := questions[1]
	if acne.Type != TypeSelect {
		t.Fatalf("expected acne question type select, got %q", acne.Type)
	}
	if !reflect.DeepEqual(acne.Options, []string{"Occasional", "Frequent", "Severe"}) {
		t.Fatalf("unexpected acne options: %v", acne.Options)
	}

	dryness := questions[0]
	if dryness.Type != TypeNumber {
		t.Fatalf("expected dryness question type number, got %q", dryness.Type)
	}
	if dryness.Options != nil {
		t.Fatalf("number question must not carry options, got %v", dryness.Options)
	}
}

func TestGenerateFollowsInputOrder(t *testing.T) {
	questions := Generate([]string{"oily", "dryness"})
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "oily" || questions[1].ID != "dryness" {
		t.Fatalf("expected input order preserved, got %q, %q", questions[0].ID, questions[1].ID)
	}
}

func TestGenerateSkipsUnknownTags(t *testing.T) {
	questions := Generate([]string{"wrinkles", "acne", "sunburn"})
	if len(questions) != 1 {
		t.Fatalf("expected unknown tags dropped, got %d questions", len(questions))
	}
	if questions[0].ID != "acne" {
		t.Fatalf("expected acne question, got %q", questions[0].ID)
	}
}

func TestGenerateIsPure(t *testing.T) {
	issues := []string{"redness", "dullness"}
	first := Generate(issues)
	second := Generate(issues)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical input")
	}

	// Mutating a returned question must not leak into the table.
	if len(first[0].Options) > 0 {
		first[0].Options[0] = "mutated"
	}
	third := Generate(issues)
	if !reflect.DeepEqual(second, third) {
		t.Fatalf("table state leaked through returned options")
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	questions := Generate(nil)
	if questions == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}
