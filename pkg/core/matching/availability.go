package matching

import (
	"sort"
	"strings"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// Index is a point-in-time, read-only view over availability entries.
// Weekday names are matched case-insensitively.
type Index struct {
	entries []model.AvailabilityEntry
}

// NewIndex creates an index over a snapshot of availability entries
func NewIndex(entries []model.AvailabilityEntry) *Index {
	return &Index{entries: entries}
}

// AvailableVolunteerIDs returns the ids of volunteers with at least one
// entry on the given weekday, deduplicated and sorted ascending. An empty
// result means nobody declared availability for that day.
func (idx *Index) AvailableVolunteerIDs(day string) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, entry := range idx.entries {
		if !strings.EqualFold(entry.Day, day) {
			continue
		}
		if !seen[entry.VolunteerID] {
			seen[entry.VolunteerID] = true
			ids = append(ids, entry.VolunteerID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SlotsFor returns the volunteer's declared time slots on the given weekday.
// An empty slot string on a matching weekday means available all day.
func (idx *Index) SlotsFor(volunteerID int64, day string) []string {
	var slots []string
	for _, entry := range idx.entries {
		if entry.VolunteerID == volunteerID && strings.EqualFold(entry.Day, day) {
			slots = append(slots, entry.TimeSlot)
		}
	}
	return slots
}
