package llm

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/wayplan/wayplan/pkg/config"
)

// OpenAIProvider implements Provider on the Chat Completions API.
type OpenAIProvider struct {
	name      string
	client    sdk.Client
	model     string
	maxTokens int
}

// NewOpenAIProvider builds a provider from its registry entry.
func NewOpenAIProvider(name string, cfg *config.LLMProviderConfig, apiKey string) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &OpenAIProvider{
		name:      name,
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Complete implements Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}

	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, sdk.SystemMessage(req.System))
	}
	messages = append(messages, sdk.UserMessage(req.Prompt))

	resp, err := p.client.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model:     sdk.ChatModel(p.model),
		Messages:  messages,
		MaxTokens: sdk.Int(int64(maxTokens)),
	})
	if err != nil {
		return nil, p.classify(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, NewError(ErrorKindTransient, p.name, ErrEmptyCompletion)
	}

	return &Response{
		Text: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

func (p *OpenAIProvider) classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("openai chat completion: %w", err)
	}

	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return NewError(ErrorKindRateLimited, p.name, err)
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return NewError(ErrorKindAuth, p.name, err)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return NewError(ErrorKindInvalidRequest, p.name, err)
		}
	}
	return NewError(ErrorKindTransient, p.name, err)
}
