// Package itinerary provides document-level helpers for the itinerary
// aggregate: canonical node ID allocation, legacy ID migration, and
// invariant validation.
package itinerary

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/wayplan/wayplan/pkg/models"
)

// canonicalIDPattern matches node IDs of the form day{N}_node{M}.
// Any other form is legacy and triggers migration on load.
var canonicalIDPattern = regexp.MustCompile(`^day(\d+)_node(\d+)$`)

// ErrInvalidIDFormat is returned when parsing a non-canonical node ID.
var ErrInvalidIDFormat = errors.New("invalid node id format")

// IsCanonicalID reports whether id matches day{N}_node{M}.
func IsCanonicalID(id string) bool {
	return canonicalIDPattern.MatchString(id)
}

// FormatNodeID builds the canonical ID for a day/sequence pair.
func FormatNodeID(dayNumber, seq int) string {
	return fmt.Sprintf("day%d_node%d", dayNumber, seq)
}

// ExtractDay parses the day component of a canonical node ID.
func ExtractDay(id string) (int, error) {
	m := canonicalIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	return strconv.Atoi(m[1])
}

// ExtractSeq parses the sequence component of a canonical node ID.
func ExtractSeq(id string) (int, error) {
	m := canonicalIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, id)
	}
	return strconv.Atoi(m[2])
}

// AllocateNodeID returns the next canonical node ID for the given day and
// advances the day's sequence watermark. The watermark (Day.MaxNodeSeq)
// survives deletions, so a sequence number handed out once is never handed
// out again even when the highest-numbered node has been removed. Callers
// must hold the per-itinerary lock; allocation is not safe for concurrent
// use on the same document.
func AllocateNodeID(it *models.Itinerary, dayNumber int) (string, error) {
	day := it.DayByNumber(dayNumber)
	if day == nil {
		return "", fmt.Errorf("day %d not found in itinerary %s", dayNumber, it.ItineraryID)
	}
	seq := MaxSeq(day)
	if day.MaxNodeSeq > seq {
		seq = day.MaxNodeSeq
	}
	seq++
	day.MaxNodeSeq = seq
	return FormatNodeID(dayNumber, seq), nil
}

// BumpWatermark raises the day's sequence watermark to cover every
// canonical ID currently present. Called before node removal so the
// removed sequence stays burned.
func BumpWatermark(day *models.Day) {
	if m := MaxSeq(day); m > day.MaxNodeSeq {
		day.MaxNodeSeq = m
	}
}

// MaxSeq returns the highest canonical sequence number present in the day,
// or 0 for a day with no canonical IDs.
func MaxSeq(day *models.Day) int {
	max := 0
	for _, n := range day.Nodes {
		m := canonicalIDPattern.FindStringSubmatch(n.ID)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max
}
