// Package llm turns natural-language questions into SQL text via hosted
// completion services.
package llm

import (
	"context"
	"fmt"

	"text2sql/config"
)

// Provider is the interface all completion backends implement. The returned
// text is the model's raw output; callers run it through ExtractSQL before
// touching a database.
type Provider interface {
	GenerateSQL(ctx context.Context, schemaDesc, question string) (string, error)
	Name() string
}

// ErrEmptyResponse is returned when the service answered with no usable text.
var ErrEmptyResponse = fmt.Errorf("no response from LLM")

// New builds the provider selected by configuration.
func New(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "groq":
		return NewGroq(cfg)
	case "openai":
		return NewOpenAI(cfg)
	case "huggingface":
		return NewHuggingFace(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

var (
	_ Provider = (*GroqProvider)(nil)
	_ Provider = (*OpenAIProvider)(nil)
	_ Provider = (*HuggingFaceProvider)(nil)
)
