package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/config"
)

// fakeProvider returns scripted results in order, then repeats the last.
type fakeProvider struct {
	name    string
	results []fakeResult
	calls   int
}

type fakeResult struct {
	text string
	err  error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Complete(_ context.Context, _ Request) (*Response, error) {
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	r := f.results[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &Response{Text: r.text, Usage: Usage{InputTokens: 10, OutputTokens: 5}}, nil
}

func gatewayConfig(defaultProvider string) *config.Config {
	budget := 1000
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider:        defaultProvider,
			SummaryTokenBudget: &budget,
		},
		Dispatch: config.DefaultDispatchConfig(),
		Routing:  config.LLMRouting{config.LLMTaskClassify: "fast"},
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"main": {Type: config.LLMProviderTypeOpenAI, Model: "m", MaxAttempts: 3},
			"fast": {Type: config.LLMProviderTypeOpenAI, Model: "f", MaxAttempts: 1},
		}),
	}
}

func fastGateway(cfg *config.Config, providers map[string]Provider) *Gateway {
	g := NewGatewayWithProviders(cfg, providers)
	g.initialBackoff = time.Millisecond
	g.maxBackoff = 2 * time.Millisecond
	return g
}

func TestGenerateJSONRoutesPerTask(t *testing.T) {
	main := &fakeProvider{name: "main", results: []fakeResult{{text: `{"ok":true}`}}}
	fast := &fakeProvider{name: "fast", results: []fakeResult{{text: `{"intent":"edit"}`}}}
	g := fastGateway(gatewayConfig("main"), map[string]Provider{"main": main, "fast": fast})

	raw, usage, err := g.GenerateJSON(context.Background(), config.LLMTaskClassify, Request{Prompt: "p"}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent":"edit"}`, string(raw))
	assert.Equal(t, 10, usage.InputTokens)
	assert.Equal(t, 1, fast.calls)
	assert.Equal(t, 0, main.calls)

	_, _, err = g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, main.calls)
}

func TestGenerateJSONRetriesTransientFailures(t *testing.T) {
	p := &fakeProvider{name: "main", results: []fakeResult{
		{err: NewError(ErrorKindTransient, "main", errors.New("boom"))},
		{err: NewError(ErrorKindRateLimited, "main", errors.New("429"))},
		{text: `{"ok":true}`},
	}}
	g := fastGateway(gatewayConfig("main"), map[string]Provider{"main": p})

	raw, _, err := g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, 3, p.calls)
}

func TestGenerateJSONDoesNotRetryPermanentFailures(t *testing.T) {
	p := &fakeProvider{name: "main", results: []fakeResult{
		{err: NewError(ErrorKindAuth, "main", errors.New("bad key"))},
	}}
	g := fastGateway(gatewayConfig("main"), map[string]Provider{"main": p})

	_, _, err := g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, p.calls)

	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, ErrorKindAuth, llmErr.Kind)
}

func TestGenerateJSONRespectsMaxAttempts(t *testing.T) {
	p := &fakeProvider{name: "main", results: []fakeResult{
		{err: NewError(ErrorKindTransient, "main", errors.New("boom"))},
	}}
	g := fastGateway(gatewayConfig("main"), map[string]Provider{"main": p})

	_, _, err := g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, nil)
	require.Error(t, err)
	assert.Equal(t, 3, p.calls)
}

func TestGenerateJSONSchemaMismatchFailsFast(t *testing.T) {
	schema := MustCompileSchema(`{
		"type": "object",
		"required": ["ops"],
		"properties": {"ops": {"type": "array"}}
	}`)

	p := &fakeProvider{name: "main", results: []fakeResult{{text: `{"nope": 1}`}}}
	g := fastGateway(gatewayConfig("main"), map[string]Provider{"main": p})

	_, _, err := g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, schema)
	require.Error(t, err)
	assert.True(t, IsSchemaMismatch(err))
	assert.Equal(t, 1, p.calls)
}

func TestGenerateJSONUnknownProvider(t *testing.T) {
	g := fastGateway(gatewayConfig("main"), map[string]Provider{})

	_, _, err := g.GenerateJSON(context.Background(), config.LLMTaskEdit, Request{Prompt: "p"}, nil)
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "markdown fenced",
			input:    "Here you go:\n```json\n{\"a\": 1}\n```\nDone.",
			expected: `{"a": 1}`,
		},
		{
			name:     "array output",
			input:    "```\n[1,2,3]\n```",
			expected: `[1,2,3]`,
		},
		{
			name:    "no json at all",
			input:   "sorry, I cannot help with that",
			wantErr: true,
		},
		{
			name:    "truncated object",
			input:   `{"a": [1, 2`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(raw))
		})
	}
}
