// Package summarizer renders an itinerary as LLM-facing context text.
//
// The output exposes every node's exact ID so that generated operations
// reference real targets: the contract with the change engine is that any
// ID appearing in the summary must resolve. Output stays under a caller
// provided token budget by truncating least-essential fields first (tips,
// then labels, then location detail) before ever dropping a node line.
package summarizer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/wayplan/wayplan/pkg/models"
)

// Directive is appended to every summary. LLMs hallucinated invented IDs
// when IDs were omitted or obscured; the directive plus verbatim IDs plus
// the engine's strict resolver close that loop.
const Directive = "When referencing nodes in operations, use the EXACT IDs shown above."

// TokenCounter measures prompt text. The default is tiktoken's cl100k_base
// encoding with a character-based fallback when the encoding is
// unavailable (e.g. no cached BPE files).
type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// HeuristicCounter approximates tokens as ceil(len/4). Used as fallback
// and by tests that need deterministic counts.
type HeuristicCounter struct{}

// Count implements TokenCounter.
func (HeuristicCounter) Count(text string) int {
	return (len(text) + 3) / 4
}

// Summarizer renders token-bounded itinerary context.
type Summarizer struct {
	counter TokenCounter
}

// New creates a summarizer with the default token counter.
func New() *Summarizer {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Warn("tiktoken encoding unavailable, using heuristic token counter", "error", err)
		return &Summarizer{counter: HeuristicCounter{}}
	}
	return &Summarizer{counter: &tiktokenCounter{enc: enc}}
}

// NewWithCounter creates a summarizer with an explicit token counter.
func NewWithCounter(c TokenCounter) *Summarizer {
	return &Summarizer{counter: c}
}

// detail selects how much optional content a rendering includes. Levels
// are tried from richest to leanest until the budget is met; node lines
// with their IDs are present at every level.
type detail int

const (
	detailFull detail = iota // tips, labels, location names
	detailNoTips
	detailNoLabels
	detailBare // IDs, titles, types, times only
)

// Summarize renders the itinerary under the given token budget.
// A budget <= 0 means unbounded.
func (s *Summarizer) Summarize(it *models.Itinerary, tokenBudget int) string {
	for _, level := range []detail{detailFull, detailNoTips, detailNoLabels, detailBare} {
		text := render(it, level)
		if tokenBudget <= 0 || s.counter.Count(text) <= tokenBudget {
			return text
		}
	}
	// Even the bare rendering exceeds the budget. Node IDs are never
	// dropped; return the bare form and let the caller size budgets.
	text := render(it, detailBare)
	slog.Warn("Itinerary summary exceeds token budget at minimum detail",
		"itinerary_id", it.ItineraryID,
		"budget", tokenBudget,
		"tokens", s.counter.Count(text))
	return text
}

func render(it *models.Itinerary, level detail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trip to %s", it.Destination)
	if it.Origin != "" {
		fmt.Fprintf(&b, " from %s", it.Origin)
	}
	fmt.Fprintf(&b, ", %s to %s.", it.StartDate, it.EndDate)
	if level <= detailNoTips && len(it.Themes) > 0 {
		fmt.Fprintf(&b, " Themes: %s.", strings.Join(it.Themes, ", "))
	}
	b.WriteString("\n\n")

	for _, day := range it.Days {
		fmt.Fprintf(&b, "Day %d:", day.DayNumber)
		if level <= detailNoLabels && day.Location != "" {
			fmt.Fprintf(&b, " (%s)", day.Location)
		}
		b.WriteString("\n")

		if len(day.Nodes) == 0 {
			b.WriteString("  No nodes\n")
			continue
		}
		for _, n := range day.Nodes {
			fmt.Fprintf(&b, "  %s: %s (%s)", n.ID, n.Title, n.Type)
			if n.StartTime != "" || n.EndTime != "" {
				fmt.Fprintf(&b, " [%s-%s]", n.StartTime, n.EndTime)
			}
			if n.Locked {
				b.WriteString(" [locked]")
			}
			b.WriteString("\n")

			if level < detailNoLabels && len(n.Labels) > 0 {
				fmt.Fprintf(&b, "    labels: %s\n", strings.Join(n.Labels, ", "))
			}
			if level < detailNoTips && len(n.Tips) > 0 {
				fmt.Fprintf(&b, "    tips: %s\n", strings.Join(n.Tips, "; "))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Directive)
	return b.String()
}
