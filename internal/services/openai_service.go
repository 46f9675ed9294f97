// internal/services/openai_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/electromart/support-backend/internal/config"
)

// OpenAIGenerator implements TextGenerator against the OpenAI chat
// completion API.
type OpenAIGenerator struct {
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration

	client *goopenai.Client
}

func NewOpenAIGenerator(cfg config.OpenAIConfig) *OpenAIGenerator {
	return &OpenAIGenerator{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
		timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
		client:      goopenai.NewClient(cfg.APIKey),
	}
}

// Generate sends one prompt and returns the first completion choice.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices found")
	}

	return resp.Choices[0].Message.Content, nil
}
