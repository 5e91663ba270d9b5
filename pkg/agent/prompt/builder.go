// Package prompt builds all prompt text and structured-output schemas
// for the built-in agents. The builder is stateless apart from the
// summarizer it renders itinerary context with; all other state comes
// from parameters, so one builder is shared by every agent.
package prompt

import (
	"fmt"
	"strings"

	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/summarizer"
)

// Builder composes system and user messages for agent LLM calls.
type Builder struct {
	summ   *summarizer.Summarizer
	budget int
}

// NewBuilder creates a prompt builder. budget is the token budget passed
// to the summarizer when itinerary context is embedded in a prompt.
func NewBuilder(summ *summarizer.Summarizer, budget int) *Builder {
	if summ == nil {
		panic("prompt.NewBuilder: summarizer must not be nil")
	}
	return &Builder{summ: summ, budget: budget}
}

const plannerRole = "You are a travel planning assistant. Respond with a single JSON object matching the requested shape. No prose outside the JSON."

// Skeleton builds the day-scaffold request for a new trip.
func (b *Builder) Skeleton(req *models.CreateItineraryRequest, dayCount int) (system, user string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan the day structure for a %d-day trip to %s (%s to %s).\n",
		dayCount, req.Destination, req.StartDate, req.EndDate)
	if req.Origin != "" {
		fmt.Fprintf(&sb, "The traveller departs from %s.\n", req.Origin)
	}
	if len(req.Themes) > 0 {
		fmt.Fprintf(&sb, "Trip themes: %s.\n", strings.Join(req.Themes, ", "))
	}
	sb.WriteString("\nFor every day produce an ordered sequence of placeholder slots ")
	sb.WriteString("(type, short working title, rough time window). Do not fill details; ")
	sb.WriteString("later steps populate each slot. Include meal slots at sensible times ")
	sb.WriteString("and a transport slot wherever the day changes area.\n")
	fmt.Fprintf(&sb, "Day numbers run 1..%d; use every day exactly once.\n", dayCount)
	return plannerRole, sb.String()
}

// Populator builds the fill request for one populator agent. allowed maps
// day number to the node IDs the agent may populate; the model must not
// touch any other ID.
func (b *Builder) Populator(it *models.Itinerary, subject string, allowed map[int][]string) (system, user string) {
	var sb strings.Builder
	sb.WriteString(b.summ.Summarize(it, b.budget))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Fill in the %s slots listed below with concrete suggestions: ", subject)
	sb.WriteString("real names, locations, realistic times and costs")
	if it.Currency != "" {
		fmt.Fprintf(&sb, " in %s", it.Currency)
	}
	sb.WriteString(".\n\nSlots you may populate (one update per id):\n")
	for _, day := range dayOrder(it, allowed) {
		fmt.Fprintf(&sb, "Day %d slots: %s\n", day, strings.Join(allowed[day], ", "))
	}
	sb.WriteString("\nReturn updates for these ids only. ")
	sb.WriteString(summarizer.Directive)
	return plannerRole, sb.String()
}

// Enrichment builds the metadata-enrichment request. ids lists the nodes
// to enrich, in document order.
func (b *Builder) Enrichment(it *models.Itinerary, ids []string) (system, user string) {
	var sb strings.Builder
	sb.WriteString(b.summ.Summarize(it, b.budget))
	sb.WriteString("\n\nFor each of the following nodes add practical tips ")
	sb.WriteString("(queueing, tickets, best time of day), short classification labels, ")
	sb.WriteString("and official or booking links when you know them:\n")
	fmt.Fprintf(&sb, "%s\n\n", strings.Join(ids, ", "))
	sb.WriteString(summarizer.Directive)
	return plannerRole, sb.String()
}

const classifierRole = "You classify one user message addressed to a travel itinerary assistant. Respond with a single JSON object. No prose outside the JSON."

// Classify builds the intent-classification request for a chat turn.
func (b *Builder) Classify(it *models.Itinerary, message string) (system, user string) {
	var sb strings.Builder
	sb.WriteString(b.summ.Summarize(it, b.budget))
	sb.WriteString("\n\nClassify the user message below.\n")
	sb.WriteString("- \"edit\": the user wants the itinerary changed.\n")
	sb.WriteString("- \"question\": the user asks about the itinerary; answer in \"reply\".\n")
	sb.WriteString("- \"chatter\": anything else; respond briefly in \"reply\".\n")
	sb.WriteString("For edits, extract the day number, the exact node ids referenced, ")
	sb.WriteString("and the operation kind when stated.\n\n")
	fmt.Fprintf(&sb, "User message: %q\n", message)
	return classifierRole, sb.String()
}

const editorRole = "You edit a travel itinerary by emitting a change set: an ordered list of operations. Respond with a single JSON object matching the change-set shape. No prose outside the JSON."

// Editor builds the change-set generation request for an edit turn.
// intent carries the classifier's extraction and may be nil.
func (b *Builder) Editor(it *models.Itinerary, message string, intent *Intent) (system, user string) {
	var sb strings.Builder
	sb.WriteString(b.summ.Summarize(it, b.budget))
	sb.WriteString("\n\nTranslate the user request below into operations.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- replace/delete/move/update must name an id that appears above, verbatim.\n")
	sb.WriteString("- insert never carries an id; the system assigns one.\n")
	sb.WriteString("- Prefer the smallest set of operations that satisfies the request.\n")
	sb.WriteString("- Leave locked (booked) nodes alone unless the user explicitly asks.\n")
	if intent != nil {
		if intent.Day != nil {
			fmt.Fprintf(&sb, "The user referred to day %d.\n", *intent.Day)
		}
		if len(intent.NodeIDs) > 0 {
			fmt.Fprintf(&sb, "The user referred to nodes: %s.\n", strings.Join(intent.NodeIDs, ", "))
		}
		if intent.Operation != "" {
			fmt.Fprintf(&sb, "The request looks like a %q operation.\n", intent.Operation)
		}
	}
	fmt.Fprintf(&sb, "\nUser request: %q\n", message)
	return editorRole, sb.String()
}

// Intent mirrors the classifier extraction the editor prompt embeds.
// Declared here so the package has no dependency on pkg/agent.
type Intent struct {
	Day       *int
	NodeIDs   []string
	Operation string
}

// dayOrder returns the day numbers present in allowed, in document order.
func dayOrder(it *models.Itinerary, allowed map[int][]string) []int {
	var out []int
	for _, d := range it.Days {
		if len(allowed[d.DayNumber]) > 0 {
			out = append(out, d.DayNumber)
		}
	}
	return out
}
