package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"text2sql/config"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
)

// GroqProvider generates SQL through the Groq API, which speaks the OpenAI
// chat protocol. This is the default backend.
type GroqProvider struct {
	llm   *openai.LLM
	model string
}

func NewGroq(cfg config.LLMConfig) (*GroqProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultGroqModel
	}

	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init groq client: %w", err)
	}
	return &GroqProvider{llm: client, model: model}, nil
}

func (g *GroqProvider) GenerateSQL(ctx context.Context, schemaDesc, question string) (string, error) {
	prompt, err := BuildPrompt(schemaDesc, question)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(0),
		llms.WithStopWords(stopWords),
	)
	if err != nil {
		return "", fmt.Errorf("groq completion: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

func (g *GroqProvider) Name() string { return "groq" }
