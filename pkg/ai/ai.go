package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"

	"github.com/vagledaren/vagledaren/pkg/types"
)

type ModelName struct {
	ChatModel string `toml:"chat_model"`
}

// ChatAI generates coaching replies from a composed message context.
type ChatAI interface {
	Query(ctx context.Context, query []*types.MessageContext) (GenerateResponse, error)
	Model() string
}

type GenerateResponse struct {
	Received []string
	Model    string
	Usage    *openai.Usage
}

func (r GenerateResponse) Message() string {
	return strings.Join(r.Received, "\n")
}

// NumTokens counts the prompt tokens of a chat request the way the
// OpenAI cookbook describes. Unknown models fall back to the nearest
// gpt-4 or gpt-3.5 encoding.
func NumTokens(messages []openai.ChatCompletionMessage, model string) (numTokens int, err error) {
	var tokensPerMessage, tokensPerName int
	switch model {
	case "gpt-3.5-turbo-0613",
		"gpt-3.5-turbo-16k-0613",
		"gpt-4-0314",
		"gpt-4-32k-0314",
		"gpt-4-0613",
		"gpt-4-32k-0613":
		tokensPerMessage = 3
		tokensPerName = 1
	case "gpt-3.5-turbo-0301":
		tokensPerMessage = 4 // every message follows <|start|>{role/name}\n{content}\n
		tokensPerName = -1   // if there's a name, the role is omitted
	default:
		if strings.Contains(model, "gpt-4") {
			return NumTokens(messages, "gpt-4-0613")
		}
		return NumTokens(messages, "gpt-3.5-turbo-0613")
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		err = fmt.Errorf("encoding for model: %v", err)
		return
	}

	for _, message := range messages {
		numTokens += tokensPerMessage
		numTokens += len(tkm.Encode(message.Content, nil, nil))
		numTokens += len(tkm.Encode(message.Role, nil, nil))
		numTokens += len(tkm.Encode(message.Name, nil, nil))
		if message.Name != "" {
			numTokens += tokensPerName
		}
	}
	numTokens += 3 // every reply is primed with <|start|>assistant<|message|>
	return numTokens, nil
}

// NumTokensFromMessages counts tokens for the internal message type.
func NumTokensFromMessages(msgs []*types.MessageContext, model string) (int, error) {
	converted := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, item := range msgs {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    item.Role.String(),
			Content: item.Content,
		})
	}
	return NumTokens(converted, model)
}
