package scan

import (
	"context"
	"errors"

	"skincare-backend/internal/detect"
	"skincare-backend/internal/llm"
	"skincare-backend/internal/questionnaire"
	"skincare-backend/internal/shared/telemetry"
)

// Result is the response payload for a processed scan.
type Result struct {
	Issues    []string                 `json:"issues"`
	Questions []questionnaire.Question `json:"questions"`
}

// Service turns an uploaded image into detected issues plus a tailored
// follow-up questionnaire.
type Service struct {
	Detector detect.Detector
	LLM      llm.QuestionClient
}

// Scan runs issue detection and builds the questionnaire.
func (s *Service) Scan(ctx context.Context, data []byte) (Result, error) {
	issues, err := s.Detector.Detect(ctx, data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Issues:    issues,
		Questions: s.questions(ctx, issues),
	}, nil
}

// questions prefers the LLM generator when one is configured; any LLM
// failure falls back to the rule-based table so a scan never fails on
// question generation.
func (s *Service) questions(ctx context.Context, issues []string) []questionnaire.Question {
	if s.LLM != nil {
		generated, err := s.LLM.GenerateQuestions(ctx, issues)
		if err == nil && len(generated) > 0 {
			return generated
		}
		if err != nil && !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("scan.llm_questions_failed", map[string]any{
				"err":         err.Error(),
				"issue_count": len(issues),
			})
		}
	}
	return questionnaire.Generate(issues)
}
