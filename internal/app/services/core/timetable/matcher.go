package timetable

import "time"

// Occupies reports whether any mark of group falls inside the schedule's inclusive range.
func (p ParsedSchedule) Occupies(group TimeSlotGroup) bool {
	for _, s := range subSlots {
		m := group.Minutes(s)
		if m >= p.StartMinutes && m <= p.EndMinutes {
			return true
		}
	}
	return false
}

// OccupiesCell reports whether the schedule claims group on day.
func (p ParsedSchedule) OccupiesCell(day time.Weekday, group TimeSlotGroup) bool {
	return p.Days.Has(day) && p.Occupies(group)
}

// Matches reports whether schedule text claims the cell at (day, group). Text that does
// not parse never matches.
func Matches(text string, day time.Weekday, group TimeSlotGroup) bool {
	parsed, err := ParseSchedule(text)
	if err != nil {
		return false
	}
	return parsed.OccupiesCell(day, group)
}
