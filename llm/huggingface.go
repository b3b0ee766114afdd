package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/go-huggingface"

	"text2sql/config"
)

// HuggingFaceProvider generates SQL through the Hugging Face text-generation
// inference API.
type HuggingFaceProvider struct {
	client *huggingface.InferenceClient
	model  string
}

func NewHuggingFace(cfg config.LLMConfig) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		client: huggingface.NewInferenceClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

func (h *HuggingFaceProvider) GenerateSQL(ctx context.Context, schemaDesc, question string) (string, error) {
	prompt, err := BuildPrompt(schemaDesc, question)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	req := &huggingface.TextGenerationRequest{
		Inputs: prompt,
		Model:  h.model,
		Parameters: huggingface.TextGenerationParameters{
			MaxNewTokens:   intPtr(500),
			Temperature:    float64Ptr(0.1),
			TopK:           intPtr(10),
			TopP:           float64Ptr(0.9),
			ReturnFullText: boolPtr(false),
		},
	}

	res, err := h.client.TextGeneration(ctx, req)
	if err != nil {
		return "", fmt.Errorf("huggingface text generation: %w", err)
	}
	if len(res) == 0 || strings.TrimSpace(res[0].GeneratedText) == "" {
		return "", ErrEmptyResponse
	}
	return res[0].GeneratedText, nil
}

func (h *HuggingFaceProvider) Name() string { return "huggingface" }

func intPtr(i int) *int {
	return &i
}

func float64Ptr(f float64) *float64 {
	return &f
}

func boolPtr(b bool) *bool {
	return &b
}
