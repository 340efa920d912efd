package timetable

import "fmt"

const (
	// FirstHour and LastHour bound the grid rows. Hour 21 is left out since it would only
	// hold the closing boundary.
	FirstHour = 7
	LastHour  = 20
)

// GenerateTimeSlots returns the fixed hour groups of the weekly grid, ordered by GroupIndex.
func GenerateTimeSlots() []TimeSlotGroup {
	groups := make([]TimeSlotGroup, 0, LastHour-FirstHour+1)
	for hour := FirstHour; hour <= LastHour; hour++ {
		groups = append(groups, newTimeSlotGroup(len(groups), hour))
	}
	return groups
}

func newTimeSlotGroup(index, hour int) TimeSlotGroup {
	start := hour*60 + subSlotOffsets[SubSlotStart]
	middle := hour*60 + subSlotOffsets[SubSlotMiddle]
	end := hour*60 + subSlotOffsets[SubSlotEnd]
	return TimeSlotGroup{
		GroupIndex:    index,
		Hour:          hour,
		StartTime:     formatClock24(start),
		MiddleTime:    formatClock24(middle),
		EndTime:       formatClock24(end),
		StartDisplay:  formatClock12(start),
		MiddleDisplay: formatClock12(middle),
		EndDisplay:    formatClock12(end),
	}
}

// FindTimeSlotGroup returns the group at index, or false when index is outside the grid.
func FindTimeSlotGroup(groups []TimeSlotGroup, index int) (TimeSlotGroup, bool) {
	if index < 0 || index >= len(groups) {
		return TimeSlotGroup{}, false
	}
	return groups[index], true
}

// formatClock24 renders minutes since midnight as sortable "HH:MM".
func formatClock24(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// formatClock12 renders minutes since midnight as "h:mm AM".
func formatClock12(minutes int) string {
	hour, minute, meridiem := to12Hour(minutes)
	return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
}

// formatCompactClock renders minutes since midnight as "h:mmAM".
func formatCompactClock(minutes int) string {
	hour, minute, meridiem := to12Hour(minutes)
	return fmt.Sprintf("%d:%02d%s", hour, minute, meridiem)
}

func to12Hour(minutes int) (int, int, string) {
	hour := minutes / 60
	minute := minutes % 60
	switch {
	case hour == 0:
		return 12, minute, meridiemAM
	case hour == 12:
		return 12, minute, meridiemPM
	case hour > 12:
		return hour - 12, minute, meridiemPM
	default:
		return hour, minute, meridiemAM
	}
}
