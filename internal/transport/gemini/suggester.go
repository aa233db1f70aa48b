// Package gemini implements suggestion generation via the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/vivaha-cloud/vendex/internal/domain"
)

const defaultModel = "gemini-2.0-flash"

// Suggester generates completions using the Gemini API.
type Suggester struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// Config holds the Gemini provider settings.
type Config struct {
	APIKey string
	Model  string
	Logger *zap.Logger
}

// NewSuggester creates a Gemini suggestion provider.
func NewSuggester(ctx context.Context, cfg *Config) (*Suggester, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Suggester{client: client, model: model, logger: cfg.Logger}, nil
}

// Generate implements suggestion.Generator. Text parts of every candidate
// are joined; an empty response is a provider error.
func (s *Suggester) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w: %w", err, domain.ErrSuggestionProviderError)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strings.TrimSpace(part.Text))
		}
	}

	output := strings.TrimSpace(b.String())
	if output == "" {
		return "", fmt.Errorf("empty gemini response: %w", domain.ErrSuggestionProviderError)
	}
	return output, nil
}

// HealthCheck verifies the configured model is reachable.
func (s *Suggester) HealthCheck(ctx context.Context) error {
	if _, err := s.client.Models.Get(ctx, s.model, nil); err != nil {
		return fmt.Errorf("get model: %w", err)
	}
	return nil
}
