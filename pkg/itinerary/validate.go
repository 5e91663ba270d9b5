package itinerary

import (
	"fmt"
	"time"

	"github.com/wayplan/wayplan/pkg/models"
)

const isoDate = "2006-01-02"

// Validate checks the structural invariants that must hold after any
// successful mutation:
//
//  1. every node ID is canonical and its day component matches the owning day
//  2. sequence numbers are unique within a day
//  3. days are sorted by dayNumber, contiguous from 1, and match the date span
//  4. consecutive timed nodes within a day are chronologically ordered
//  5. a node with a bookingRef is locked
//
// Returns the first violation found, or nil.
func Validate(it *models.Itinerary) error {
	if err := validateDaySpan(it); err != nil {
		return err
	}
	for _, day := range it.Days {
		seen := make(map[int]bool, len(day.Nodes))
		prevStart := ""
		for _, n := range day.Nodes {
			dayNum, err := ExtractDay(n.ID)
			if err != nil {
				return fmt.Errorf("node %q: %w", n.ID, err)
			}
			if dayNum != day.DayNumber {
				return fmt.Errorf("node %q: id day %d does not match owning day %d", n.ID, dayNum, day.DayNumber)
			}
			seq, err := ExtractSeq(n.ID)
			if err != nil {
				return fmt.Errorf("node %q: %w", n.ID, err)
			}
			if seen[seq] {
				return fmt.Errorf("day %d: duplicate node sequence %d", day.DayNumber, seq)
			}
			seen[seq] = true

			if n.StartTime != "" {
				if prevStart != "" && n.StartTime < prevStart {
					return fmt.Errorf("day %d: node %q starts at %s before preceding node at %s",
						day.DayNumber, n.ID, n.StartTime, prevStart)
				}
				prevStart = n.StartTime
			}
			if n.BookingRef != nil && *n.BookingRef != "" && !n.Locked {
				return fmt.Errorf("node %q: bookingRef present but node is not locked", n.ID)
			}
		}
	}
	return nil
}

func validateDaySpan(it *models.Itinerary) error {
	for i, day := range it.Days {
		if day.DayNumber != i+1 {
			return fmt.Errorf("days not contiguous: position %d has dayNumber %d", i, day.DayNumber)
		}
	}
	if it.StartDate == "" || it.EndDate == "" {
		return nil
	}
	start, err := time.Parse(isoDate, it.StartDate)
	if err != nil {
		return fmt.Errorf("invalid startDate %q: %w", it.StartDate, err)
	}
	end, err := time.Parse(isoDate, it.EndDate)
	if err != nil {
		return fmt.Errorf("invalid endDate %q: %w", it.EndDate, err)
	}
	want := int(end.Sub(start).Hours()/24) + 1
	if want < 1 {
		return fmt.Errorf("endDate %s precedes startDate %s", it.EndDate, it.StartDate)
	}
	if len(it.Days) != want {
		return fmt.Errorf("day count %d does not match date span %d", len(it.Days), want)
	}
	return nil
}

// DayCount returns the number of calendar days between startDate and
// endDate, inclusive. Returns an error on unparseable dates or an
// inverted range.
func DayCount(startDate, endDate string) (int, error) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid startDate %q: %w", startDate, err)
	}
	end, err := time.Parse(isoDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid endDate %q: %w", endDate, err)
	}
	n := int(end.Sub(start).Hours()/24) + 1
	if n < 1 {
		return 0, fmt.Errorf("endDate %s precedes startDate %s", endDate, startDate)
	}
	return n, nil
}

// DateForDay returns the ISO date of the 1-based dayNumber within the trip.
func DateForDay(startDate string, dayNumber int) (string, error) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return "", fmt.Errorf("invalid startDate %q: %w", startDate, err)
	}
	return start.AddDate(0, 0, dayNumber-1).Format(isoDate), nil
}
