package llm

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"text2sql/config"
)

const defaultOpenAIModel = goopenai.GPT4oMini

// OpenAIProvider generates SQL through the OpenAI chat completion API, or
// any compatible endpoint when a base URL is configured.
type OpenAIProvider struct {
	client *goopenai.Client
	model  string
}

func NewOpenAI(cfg config.LLMConfig) (*OpenAIProvider, error) {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

func (o *OpenAIProvider) GenerateSQL(ctx context.Context, schemaDesc, question string) (string, error) {
	prompt, err := BuildPrompt(schemaDesc, question)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	resp, err := o.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: o.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Stop: stopWords,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) Name() string { return "openai" }
