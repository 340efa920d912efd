package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	t.Run("Day Idioms", func(t *testing.T) {
		testCases := []struct {
			schedule string
			days     DaySet
		}{
			{"MON & TUE 1:00PM-3:00PM", NewDaySet(time.Monday, time.Tuesday)},
			{"WED & THU 1:00PM-3:00PM", NewDaySet(time.Wednesday, time.Thursday)},
			{"FRI & SAT 1:00PM-3:00PM", NewDaySet(time.Friday, time.Saturday)},
			{"M/W/F 10:00AM-11:00AM", NewDaySet(time.Monday, time.Wednesday, time.Friday)},
			{"T/TH 7:30AM-9:00AM", NewDaySet(time.Tuesday, time.Thursday)},
			{"M/T/W/TH/F 8:00AM-9:00AM", NewDaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)},
			{"WEDNESDAY 8:00AM-9:00AM", NewDaySet(time.Wednesday)},
			{"Saturday 8:00AM-9:00AM", NewDaySet(time.Saturday)},
			{"SATURDAY & SUNDAY 8:00AM-9:00AM", NewDaySet(time.Saturday, time.Sunday)},
			{"m/w/f 10:00am-11:00am", NewDaySet(time.Monday, time.Wednesday, time.Friday)},
			{"MON  &  TUE 1:00PM-3:00PM", NewDaySet(time.Monday, time.Tuesday)},
		}

		for _, tc := range testCases {
			t.Run(tc.schedule, func(t *testing.T) {
				parsed, err := ParseSchedule(tc.schedule)
				require.NoError(t, err)
				assert.Equal(t, tc.days, parsed.Days)
			})
		}
	})

	t.Run("Time Range", func(t *testing.T) {
		testCases := []struct {
			schedule string
			start    int
			end      int
		}{
			{"MON & TUE 1:00PM-3:00PM", 13 * 60, 14*60 + 59},
			{"M/W/F 10:00AM-11:00AM", 10 * 60, 10*60 + 59},
			{"T/TH 7:30AM-9:00AM", 7*60 + 30, 8*60 + 59},
			{"MONDAY 8:00AM-10:30AM", 8 * 60, 10*60 + 30},
			{"MONDAY 12:00PM-1:00PM", 12 * 60, 12*60 + 59},
			{"MONDAY 11:00AM-12:30PM", 11 * 60, 12*60 + 30},
			{"MONDAY 12:00AM-1:00AM", 0, 59},
			{"MONDAY 9AM-10AM", 9 * 60, 9*60 + 59},
			{"MONDAY 9:00 am - 10:15 pm", 9 * 60, 22*60 + 15},
		}

		for _, tc := range testCases {
			t.Run(tc.schedule, func(t *testing.T) {
				parsed, err := ParseSchedule(tc.schedule)
				require.NoError(t, err)
				assert.Equal(t, tc.start, parsed.StartMinutes)
				assert.Equal(t, tc.end, parsed.EndMinutes)
				assert.Less(t, parsed.StartMinutes, parsed.EndMinutes)
			})
		}
	})

	t.Run("Failures", func(t *testing.T) {
		testCases := []struct {
			schedule string
			err      error
		}{
			{"", ErrEmptySchedule},
			{"   ", ErrEmptySchedule},
			{"TBA", ErrUnrecognizedDays},
			{"MWF 10:00AM-11:00AM", ErrUnrecognizedDays},
			{"MONDAY TBA", ErrUnparsableTimeRange},
			{"MONDAY 10:00-11:00", ErrUnparsableTimeRange},
			{"MONDAY 13:00PM-2:00PM", ErrUnparsableTimeRange},
			{"MONDAY 0:30AM-2:00AM", ErrUnparsableTimeRange},
			{"MONDAY 10:75AM-11:00AM", ErrUnparsableTimeRange},
			{"MONDAY 3:00PM-1:00PM", ErrInvalidTimeRange},
			{"MONDAY 1:00PM-1:00PM", ErrInvalidTimeRange},
			{"MONDAY 1:00AM-12:00AM", ErrInvalidTimeRange},
		}

		for _, tc := range testCases {
			t.Run(tc.schedule, func(t *testing.T) {
				_, err := ParseSchedule(tc.schedule)
				assert.ErrorIs(t, err, tc.err)
			})
		}
	})
}

func TestDiagnosticReason(t *testing.T) {
	_, err := ParseSchedule("TBA")
	assert.Equal(t, "unrecognized_days", DiagnosticReason(err))

	_, err = ParseSchedule("MONDAY 3:00PM-1:00PM")
	assert.Equal(t, "invalid_time_range", DiagnosticReason(err))

	assert.Equal(t, "", DiagnosticReason(nil))
}

func TestDaySet(t *testing.T) {
	set := NewDaySet(time.Sunday, time.Friday, time.Monday)

	assert.True(t, set.Has(time.Monday))
	assert.False(t, set.Has(time.Tuesday))
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday, time.Sunday}, set.Weekdays(), "Sunday should sort last")
	assert.Equal(t, "Monday,Friday,Sunday", set.String())

	raw, err := set.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["Monday","Friday","Sunday"]`, string(raw))
}
