package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots(t *testing.T) {
	groups := GenerateTimeSlots()
	require.Len(t, groups, 14, "grid should have one group per hour from 7 to 20")

	t.Run("First Group", func(t *testing.T) {
		g := groups[0]
		assert.Equal(t, 0, g.GroupIndex)
		assert.Equal(t, "07:00", g.StartTime)
		assert.Equal(t, "07:30", g.MiddleTime)
		assert.Equal(t, "07:59", g.EndTime)
		assert.Equal(t, "7:00 AM", g.StartDisplay)
		assert.Equal(t, "7:30 AM", g.MiddleDisplay)
		assert.Equal(t, "7:59 AM", g.EndDisplay)
	})

	t.Run("Noon Group", func(t *testing.T) {
		g := groups[5]
		assert.Equal(t, "12:00", g.StartTime)
		assert.Equal(t, "12:00 PM", g.StartDisplay, "noon should display as 12 PM")
		assert.Equal(t, "12:59 PM", g.EndDisplay)
	})

	t.Run("Last Group", func(t *testing.T) {
		g := groups[13]
		assert.Equal(t, 13, g.GroupIndex)
		assert.Equal(t, "20:00", g.StartTime)
		assert.Equal(t, "20:59", g.EndTime)
		assert.Equal(t, "8:00 PM", g.StartDisplay)
		assert.Equal(t, "8:59 PM", g.EndDisplay)
		assert.Equal(t, "8:00 PM - 8:59 PM", g.Label())
	})

	t.Run("Ordered By Index And Hour", func(t *testing.T) {
		for i, g := range groups {
			assert.Equal(t, i, g.GroupIndex)
			assert.Equal(t, FirstHour+i, g.Hour)
			assert.Equal(t, g.Hour*60+30, g.Minutes(SubSlotMiddle))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, groups, GenerateTimeSlots())
	})
}

func TestFindTimeSlotGroup(t *testing.T) {
	groups := GenerateTimeSlots()

	g, ok := FindTimeSlotGroup(groups, 6)
	assert.True(t, ok)
	assert.Equal(t, 13, g.Hour)

	_, ok = FindTimeSlotGroup(groups, -1)
	assert.False(t, ok)
	_, ok = FindTimeSlotGroup(groups, 14)
	assert.False(t, ok)
}

func TestClockFormatting(t *testing.T) {
	testCases := []struct {
		minutes int
		clock12 string
		compact string
	}{
		{minutes: 0, clock12: "12:00 AM", compact: "12:00AM"},
		{minutes: 59, clock12: "12:59 AM", compact: "12:59AM"},
		{minutes: 7*60 + 30, clock12: "7:30 AM", compact: "7:30AM"},
		{minutes: 12 * 60, clock12: "12:00 PM", compact: "12:00PM"},
		{minutes: 14*60 + 59, clock12: "2:59 PM", compact: "2:59PM"},
		{minutes: 23*60 + 5, clock12: "11:05 PM", compact: "11:05PM"},
	}

	for _, tc := range testCases {
		t.Run(tc.clock12, func(t *testing.T) {
			assert.Equal(t, tc.clock12, formatClock12(tc.minutes))
			assert.Equal(t, tc.compact, formatCompactClock(tc.minutes))
		})
	}
}
