package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/types"
)

const (
	NAME = "openai"

	// The coaching conversation keeps a steady, warm tone. Both values
	// apply to every completion regardless of mode.
	TEMPERATURE = 0.7
	MAX_TOKENS  = 1000
)

type Driver struct {
	client *openai.Client
	model  ai.ModelName
}

func New(token, proxy string, model ai.ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT3Dot5Turbo
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Model() string {
	return s.model.ChatModel
}

func (s *Driver) Query(ctx context.Context, query []*types.MessageContext) (ai.GenerateResponse, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model.ChatModel,
		Temperature: TEMPERATURE,
		MaxTokens:   MAX_TOKENS,
		Messages: lo.Map(query, func(item *types.MessageContext, _ int) openai.ChatCompletionMessage {
			return openai.ChatCompletionMessage{
				Role:    item.Role.String(),
				Content: item.Content,
			}
		}),
	}

	var result ai.GenerateResponse
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return result, fmt.Errorf("Completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("Completion error: empty choices")
	}

	slog.Debug("Query", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	result.Received = append(result.Received, resp.Choices[0].Message.Content)
	result.Model = resp.Model
	result.Usage = &resp.Usage

	return result, nil
}
