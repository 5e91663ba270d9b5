package changeset

import (
	"fmt"

	"github.com/wayplan/wayplan/pkg/models"
)

// parseHM converts "HH:MM" to minutes since midnight. Returns -1 for an
// empty or unparseable value; callers treat such nodes as untimed.
func parseHM(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return -1
	}
	if h < 0 || h > 47 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// formatHM renders minutes since midnight as "HH:MM".
func formatHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// shiftTimesFrom resolves overlaps created by inserting a timed node at
// index idx: every subsequent timed node that starts before its
// predecessor ends is pushed forward by the overlap, preserving its
// duration. Untimed nodes break the cascade.
func shiftTimesFrom(day *models.Day, idx int) {
	for i := idx + 1; i < len(day.Nodes); i++ {
		prev := day.Nodes[i-1]
		cur := day.Nodes[i]
		prevEnd := parseHM(prev.EndTime)
		curStart := parseHM(cur.StartTime)
		if prevEnd < 0 || curStart < 0 {
			return
		}
		if curStart >= prevEnd {
			return
		}
		delta := prevEnd - curStart
		cur.StartTime = formatHM(curStart + delta)
		if curEnd := parseHM(cur.EndTime); curEnd >= 0 {
			cur.EndTime = formatHM(curEnd + delta)
		}
	}
}
