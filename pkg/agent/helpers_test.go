package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/summarizer"
)

// scriptedProvider replays canned completions and records the requests it
// received. Safe for concurrent use.
type scriptedProvider struct {
	name      string
	mu        sync.Mutex
	responses []string
	calls     int
	requests  []llm.Request
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.calls
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	p.calls++
	p.requests = append(p.requests, req)
	return &llm.Response{
		Text:  p.responses[idx],
		Usage: llm.Usage{InputTokens: 10, OutputTokens: 20},
	}, nil
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *scriptedProvider) lastRequest() llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[len(p.requests)-1]
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	return cfg
}

// newScriptedGateway wires one scripted provider under both built-in
// provider names, so every task routes to the same script.
func newScriptedGateway(t *testing.T, responses ...string) (*llm.Gateway, *scriptedProvider) {
	t.Helper()
	p := &scriptedProvider{name: "scripted", responses: responses}
	gw := llm.NewGatewayWithProviders(loadTestConfig(t), map[string]llm.Provider{
		"openai-default": p,
		"openai-mini":    p,
	})
	return gw, p
}

func testPromptBuilder() *prompt.Builder {
	return prompt.NewBuilder(summarizer.NewWithCounter(summarizer.HeuristicCounter{}), 2000)
}

// testItinerary builds a two-day document with placeholder skeleton nodes.
func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "it-test",
		Version:     1,
		Destination: "Lisbon",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-02",
		Status:      models.ItineraryStatusGenerating,
		Days: []*models.Day{
			{
				DayNumber:  1,
				Date:       "2026-09-01",
				MaxNodeSeq: 3,
				Nodes: []*models.Node{
					{ID: "day1_node1", Type: models.NodeTypeAttraction, Title: "Morning sight"},
					{ID: "day1_node2", Type: models.NodeTypeMeal, Title: "Lunch"},
					{ID: "day1_node3", Type: models.NodeTypeTransport, Title: "To next area"},
				},
			},
			{
				DayNumber:  2,
				Date:       "2026-09-02",
				MaxNodeSeq: 1,
				Nodes: []*models.Node{
					{ID: "day2_node1", Type: models.NodeTypeAttraction, Title: "Day trip"},
				},
			},
		},
	}
}

// stubAgent is a metadata-only agent for registry and planning tests.
type stubAgent struct {
	meta
	execute func(ctx context.Context, ec *ExecContext) (*Result, error)
}

func newStub(name string, tasks []Task, priority int, dependsOn []string, required bool) *stubAgent {
	return &stubAgent{meta: meta{
		name:      name,
		tasks:     tasks,
		priority:  priority,
		dependsOn: dependsOn,
		required:  required,
	}}
}

func (s *stubAgent) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if s.execute != nil {
		return s.execute(ctx, ec)
	}
	return &Result{Status: ExecStatusCompleted}, nil
}
