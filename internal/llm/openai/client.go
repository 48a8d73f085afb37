package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"skincare-backend/internal/questionnaire"
)

const systemPrompt = "You are a skincare consultation assistant. Given a list of detected " +
	"skin issues, produce one short follow-up question per issue. Respond with a JSON object " +
	`{"questions": [{"id", "text", "type", "options"}]} where type is one of "text", ` +
	`"number" or "select", id equals the issue tag, and options is only present for select questions.`

// Client implements llm.QuestionClient using OpenAI Chat Completions.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}, nil
}

// NewClientWithBaseURL constructs a client against a custom endpoint.
// Used by tests and self-hosted gateways.
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// GenerateQuestions implements llm.QuestionClient.
func (c *Client) GenerateQuestions(ctx context.Context, issues []string) ([]questionnaire.Question, error) {
	if len(issues) == 0 {
		return nil, nil
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Detected issues: " + strings.Join(issues, ", ")},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}
	return parseQuestions(resp.Choices[0].Message.Content)
}

func parseQuestions(content string) ([]questionnaire.Question, error) {
	var payload struct {
		Questions []questionnaire.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode completion payload: %w", err)
	}

	questions := make([]questionnaire.Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if strings.TrimSpace(q.ID) == "" || strings.TrimSpace(q.Text) == "" {
			continue
		}
		switch q.Type {
		case questionnaire.TypeText, questionnaire.TypeNumber:
			q.Options = nil
		case questionnaire.TypeSelect:
			if len(q.Options) == 0 {
				continue
			}
		default:
			q.Type = questionnaire.TypeText
			q.Options = nil
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, errors.New("completion contained no usable questions")
	}
	return questions, nil
}
