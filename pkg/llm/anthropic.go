package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/wayplan/wayplan/pkg/config"
)

// AnthropicProvider implements Provider on the Claude Messages API.
type AnthropicProvider struct {
	name      string
	client    sdk.Client
	model     string
	maxTokens int
}

// NewAnthropicProvider builds a provider from its registry entry.
func NewAnthropicProvider(name string, cfg *config.LLMProviderConfig, apiKey string) *AnthropicProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicProvider{
		name:      name,
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string {
	return p.name
}

// Complete implements Provider.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, p.classify(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return nil, NewError(ErrorKindTransient, p.name, ErrEmptyCompletion)
	}

	return &Response{
		Text: b.String(),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func (p *AnthropicProvider) classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("anthropic messages.new: %w", err)
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
