package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
)

// ErrAnalysisDisabled is returned when no LLM credentials are configured.
var ErrAnalysisDisabled = errors.New("analysis disabled: no API key configured")

// AnalysisService sends built prompts to an OpenAI-compatible endpoint.
// Without an API key it stays disabled and the dashboard falls back to
// showing the prompt for manual copy-paste.
type AnalysisService struct {
	client *openai.Client
	model  string
}

// NewAnalysisService creates the service. An empty apiKey disables it.
func NewAnalysisService(apiKey, baseURL, model string) *AnalysisService {
	if apiKey == "" {
		log.Println("analysis: no API key configured, LLM analysis disabled")
		return &AnalysisService{}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	log.Printf("analysis: enabled (model=%s)", model)
	return &AnalysisService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Enabled reports whether LLM analysis is available.
func (s *AnalysisService) Enabled() bool {
	return s.client != nil
}

// Analyze runs the prompt through the configured model and returns the
// completion text.
func (s *AnalysisService) Analyze(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrAnalysisDisabled
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		return "", errors.New("chat completion returned no choices")
	}

	metrics.AnalysisRequests.WithLabelValues("ok").Inc()
	return resp.Choices[0].Message.Content, nil
}
