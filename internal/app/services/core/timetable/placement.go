package timetable

import (
	"time"
	"unidash-service/internal/app/models"
)

// ResolvePlacement builds the cell content for a load known to occupy (day, group).
func ResolvePlacement(load models.FacultyLoad, parsed ParsedSchedule, day time.Weekday, group TimeSlotGroup) PlacementResult {
	return PlacementResult{
		Load:          load,
		Day:           day,
		GroupIndex:    group.GroupIndex,
		IsAnchor:      isFirstOccupiedGroup(parsed, group),
		AnchorSubSlot: anchorSubSlot(parsed, group),
		DisplayRange:  DisplayRange(parsed),
	}
}

// anchorSubSlot is the mark equal to the class start, or the middle mark when none is.
func anchorSubSlot(parsed ParsedSchedule, group TimeSlotGroup) SubSlot {
	for _, s := range subSlots {
		if group.Minutes(s) == parsed.StartMinutes {
			return s
		}
	}
	return SubSlotMiddle
}

// isFirstOccupiedGroup is true when the hour before group is either outside the grid or
// not claimed by the schedule. Occupied hours are contiguous, so this marks the top cell.
func isFirstOccupiedGroup(parsed ParsedSchedule, group TimeSlotGroup) bool {
	if !parsed.Occupies(group) {
		return false
	}
	if group.Hour <= FirstHour {
		return true
	}
	return !parsed.Occupies(newTimeSlotGroup(group.GroupIndex-1, group.Hour-1))
}

// DisplayRange renders the class span as "1:00PM-2:59PM".
func DisplayRange(parsed ParsedSchedule) string {
	return formatCompactClock(parsed.StartMinutes) + "-" + formatCompactClock(parsed.EndMinutes)
}
