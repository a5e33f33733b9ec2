// Package scheduler holds the time-conflict detection and slot-suggestion
// routines used when scheduling events. Pure functions over the event
// collection; no side effects, no state of its own.
package scheduler

import (
	"fmt"

	"eventhub/internal/domain"
)

// Business-hours window for suggested slots: candidate hours run from
// FirstHour to LastHour inclusive at one-hour granularity.
const (
	FirstHour = 9
	LastHour  = 17

	// DefaultSlotLimit caps how many free slots a suggestion returns.
	DefaultSlotLimit = 5
)

// FindConflicts returns the events whose date and time exactly equal the
// candidates, in collection order, excluding the event with excludeID.
// Comparison is string equality on the normalized YYYY-MM-DD / HH:MM forms;
// events carry no duration, so there is no overlap reasoning. Pass an empty
// excludeID when not editing an existing event.
func FindConflicts(events []*domain.Event, date, tm, excludeID string) []*domain.Event {
	conflicts := make([]*domain.Event, 0)
	for _, e := range events {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if e.Date == date && e.Time == tm {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// SuggestSlots returns up to limit conflict-free HH:MM slots on the given
// date, ascending, drawn from the business-hours window. A limit below 1
// falls back to DefaultSlotLimit. If fewer free hours exist, all of them are
// returned; never an error.
func SuggestSlots(events []*domain.Event, date string, limit int) []string {
	if limit < 1 {
		limit = DefaultSlotLimit
	}
	slots := make([]string, 0, limit)
	for hour := FirstHour; hour <= LastHour; hour++ {
		tm := fmt.Sprintf("%02d:00", hour)
		if len(FindConflicts(events, date, tm, "")) == 0 {
			slots = append(slots, tm)
			if len(slots) == limit {
				break
			}
		}
	}
	return slots
}
