package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/wayplan/wayplan/pkg/config"
)

const (
	defaultMaxAttempts    = 3
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 8 * time.Second
)

// Gateway routes structured-output completions to the provider
// configured for each task, retrying transient and rate-limit failures
// with jittered exponential backoff. Schema mismatches fail fast: a
// malformed change set must never be silently repaired.
type Gateway struct {
	cfg       *config.Config
	providers map[string]Provider

	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewGateway builds providers for every registry entry whose API key is
// present in the environment. Entries without keys are skipped with a
// warning; invoking a task routed to one fails with
// ErrProviderNotConfigured.
func NewGateway(cfg *config.Config) *Gateway {
	providers := make(map[string]Provider)

	for name, pc := range cfg.LLMProviderRegistry.GetAll() {
		apiKey := ""
		if pc.APIKeyEnv != "" {
			apiKey = os.Getenv(pc.APIKeyEnv)
		}
		if apiKey == "" {
			slog.Warn("Skipping LLM provider without API key", "provider", name, "env", pc.APIKeyEnv)
			continue
		}

		switch pc.Type {
		case config.LLMProviderTypeAnthropic:
			providers[name] = NewAnthropicProvider(name, pc, apiKey)
		case config.LLMProviderTypeOpenAI:
			providers[name] = NewOpenAIProvider(name, pc, apiKey)
		default:
			slog.Warn("Skipping LLM provider with unknown type", "provider", name, "type", pc.Type)
		}
	}

	slog.Info("LLM gateway initialized", "providers", len(providers))
	return newGateway(cfg, providers)
}

// NewGatewayWithProviders builds a gateway over explicit provider
// implementations. Used by tests and embedded deployments.
func NewGatewayWithProviders(cfg *config.Config, providers map[string]Provider) *Gateway {
	return newGateway(cfg, providers)
}

func newGateway(cfg *config.Config, providers map[string]Provider) *Gateway {
	return &Gateway{
		cfg:            cfg,
		providers:      providers,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}
}

// GenerateJSON completes the request on the provider routed for task and
// returns the JSON document extracted from the completion. When schema
// is non-nil the document is validated against it; validation failures
// return an ErrorKindSchemaMismatch error without retrying.
func (g *Gateway) GenerateJSON(ctx context.Context, task config.LLMTask, req Request, schema *jsonschema.Schema) (json.RawMessage, Usage, error) {
	providerName := g.cfg.ProviderForTask(task)
	provider, ok := g.providers[providerName]
	if !ok {
		return nil, Usage{}, fmt.Errorf("%w: %s (task %s)", ErrProviderNotConfigured, providerName, task)
	}

	maxAttempts := defaultMaxAttempts
	if pc, err := g.cfg.GetLLMProvider(providerName); err == nil && pc.MaxAttempts > 0 {
		maxAttempts = pc.MaxAttempts
	}

	start := time.Now()
	var resp *Response
	operation := func() error {
		r, err := provider.Complete(ctx, req)
		if err != nil {
			if IsRetryable(err) {
				slog.Warn("Retryable LLM failure",
					"provider", providerName, "task", task, "error", err)
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.initialBackoff
	bo.MaxInterval = g.maxBackoff

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxAttempts-1)), ctx))
	if err != nil {
		return nil, Usage{}, fmt.Errorf("provider %s: %w", providerName, err)
	}

	raw, err := ExtractJSON(resp.Text)
	if err != nil {
		return nil, resp.Usage, NewError(ErrorKindSchemaMismatch, providerName, err)
	}
	if schema != nil {
		if err := ValidateJSON(schema, raw); err != nil {
			return nil, resp.Usage, NewError(ErrorKindSchemaMismatch, providerName, err)
		}
	}

	slog.Debug("LLM completion",
		"provider", providerName,
		"task", task,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"duration", time.Since(start))

	return raw, resp.Usage, nil
}
