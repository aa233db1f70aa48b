package suggestion

import "context"

// Generator produces a completion for a prompt. Implementations live in
// internal/transport (openai, gemini).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
