package timetable

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	meridiemAM = "AM"
	meridiemPM = "PM"
)

var (
	ErrEmptySchedule       = errors.New("schedule is empty")
	ErrUnrecognizedDays    = errors.New("schedule names no recognized day")
	ErrUnparsableTimeRange = errors.New("schedule has no parsable time range")
	ErrInvalidTimeRange    = errors.New("schedule time range does not end after it starts")
)

var timeRangeRegex = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)

// dayIdiom maps a compact multi-day token, as registrars write it, to its weekdays.
type dayIdiom struct {
	token string
	days  DaySet
}

// dayIdioms is a closed table. Schedules using any other shorthand fail with ErrUnrecognizedDays.
var dayIdioms = []dayIdiom{
	{token: "MON & TUE", days: NewDaySet(time.Monday, time.Tuesday)},
	{token: "WED & THU", days: NewDaySet(time.Wednesday, time.Thursday)},
	{token: "FRI & SAT", days: NewDaySet(time.Friday, time.Saturday)},
	{token: "M/W/F", days: NewDaySet(time.Monday, time.Wednesday, time.Friday)},
	{token: "T/TH", days: NewDaySet(time.Tuesday, time.Thursday)},
	{token: "M/T/W/TH/F", days: NewDaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)},
}

// ParseSchedule turns free text such as "M/W/F 10:00AM-11:00AM" into a ParsedSchedule.
// Returned errors wrap one of the Err* sentinels above.
func ParseSchedule(text string) (ParsedSchedule, error) {
	normalized := strings.Join(strings.Fields(strings.ToUpper(text)), " ")
	if normalized == "" {
		return ParsedSchedule{}, ErrEmptySchedule
	}

	days := matchDays(normalized)
	if days.IsEmpty() {
		return ParsedSchedule{}, fmt.Errorf("%w: %q", ErrUnrecognizedDays, text)
	}

	start, end, err := parseTimeRange(normalized)
	if err != nil {
		return ParsedSchedule{}, fmt.Errorf("%w: %q", err, text)
	}

	return ParsedSchedule{
		Days:         days,
		StartMinutes: start,
		EndMinutes:   end,
	}, nil
}

// matchDays expects upper-cased text.
func matchDays(upper string) DaySet {
	var days DaySet
	for _, d := range weekOrder {
		if strings.Contains(upper, strings.ToUpper(d.String())) {
			days = days.With(d)
		}
	}
	for _, idiom := range dayIdioms {
		if strings.Contains(upper, idiom.token) {
			days |= idiom.days
		}
	}
	return days
}

func parseTimeRange(text string) (int, int, error) {
	m := timeRangeRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, ErrUnparsableTimeRange
	}

	start, ok := clockMinutes(m[1], m[2], m[3])
	if !ok {
		return 0, 0, ErrUnparsableTimeRange
	}
	end, ok := clockMinutes(m[4], m[5], m[6])
	if !ok {
		return 0, 0, ErrUnparsableTimeRange
	}

	// A range ending on the hour stops at the previous minute so it does not claim the
	// next hour's h:00 mark.
	if end%60 == 0 {
		end--
	}
	if start >= end {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}

// clockMinutes converts a 12-hour clock reading to minutes since midnight.
func clockMinutes(hourText, minuteText, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute := 0
	if minuteText != "" {
		minute, err = strconv.Atoi(minuteText)
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	switch strings.ToUpper(meridiem) {
	case meridiemAM:
		if hour == 12 {
			hour = 0
		}
	case meridiemPM:
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}
	return hour*60 + minute, true
}

// DiagnosticReason names the sentinel behind a parse failure, for logs and reports.
func DiagnosticReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptySchedule):
		return "empty_schedule"
	case errors.Is(err, ErrUnrecognizedDays):
		return "unrecognized_days"
	case errors.Is(err, ErrUnparsableTimeRange):
		return "unparsable_time_range"
	case errors.Is(err, ErrInvalidTimeRange):
		return "invalid_time_range"
	default:
		return "unknown"
	}
}
