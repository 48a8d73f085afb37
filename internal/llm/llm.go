package llm

import (
	"context"
	"errors"

	"skincare-backend/internal/questionnaire"
)

// QuestionClient abstracts LLM providers for follow-up question generation.
// When a provider is wired in, it replaces the rule-based generator rather
// than extending it.
type QuestionClient interface {
	GenerateQuestions(ctx context.Context, issues []string) ([]questionnaire.Question, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// GenerateQuestions returns ErrNotConfigured.
func (PlaceholderClient) GenerateQuestions(ctx context.Context, issues []string) ([]questionnaire.Question, error) {
	_ = ctx
	_ = issues
	return nil, ErrNotConfigured
}
