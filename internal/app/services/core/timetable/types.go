package timetable

import (
	"fmt"
	"strings"
	"time"
	"unidash-service/internal/app/models"

	"github.com/goccy/go-json"
)

// SubSlot names one of the three marks inside a time slot group.
type SubSlot int

const (
	SubSlotStart SubSlot = iota
	SubSlotMiddle
	SubSlotEnd
)

var subSlots = [...]SubSlot{SubSlotStart, SubSlotMiddle, SubSlotEnd}

// subSlotOffsets are the minute marks of each sub-slot within its hour.
var subSlotOffsets = [...]int{0, 30, 59}

func (s SubSlot) String() string {
	switch s {
	case SubSlotStart:
		return "start"
	case SubSlotMiddle:
		return "middle"
	case SubSlotEnd:
		return "end"
	default:
		return fmt.Sprintf("SubSlot(%d)", int(s))
	}
}

func (s SubSlot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TimeSlotGroup is one hour row of the weekly grid, marked at h:00, h:30 and h:59.
type TimeSlotGroup struct {
	GroupIndex    int    `json:"group_index"`
	Hour          int    `json:"hour"`
	StartTime     string `json:"start_time"`
	MiddleTime    string `json:"middle_time"`
	EndTime       string `json:"end_time"`
	StartDisplay  string `json:"start_display"`
	MiddleDisplay string `json:"middle_display"`
	EndDisplay    string `json:"end_display"`
}

// Minutes returns the sub-slot mark as minutes since midnight.
func (g TimeSlotGroup) Minutes(s SubSlot) int {
	return g.Hour*60 + subSlotOffsets[s]
}

// Label is the row caption used by exports, e.g. "7:00 AM - 7:59 AM".
func (g TimeSlotGroup) Label() string {
	return g.StartDisplay + " - " + g.EndDisplay
}

// DaySet is a set of weekdays, one bit per time.Weekday.
type DaySet uint8

func NewDaySet(days ...time.Weekday) DaySet {
	var set DaySet
	for _, d := range days {
		set = set.With(d)
	}
	return set
}

func (s DaySet) With(d time.Weekday) DaySet {
	return s | 1<<uint(d)
}

func (s DaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s DaySet) IsEmpty() bool {
	return s == 0
}

// Weekdays lists the members starting from Monday, Sunday last.
func (s DaySet) Weekdays() []time.Weekday {
	var out []time.Weekday
	for _, d := range weekOrder {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Weekdays() {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

func (s DaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Weekdays() {
		names = append(names, d.String())
	}
	return json.Marshal(names)
}

var weekOrder = [...]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ParsedSchedule is the typed form of a schedule string. EndMinutes is inclusive and already
// carries the end-of-hour adjustment, so StartMinutes < EndMinutes always holds.
type ParsedSchedule struct {
	Days         DaySet `json:"days"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
}

// PlacementResult is what a grid cell holds when a load occupies it.
type PlacementResult struct {
	Load          models.FacultyLoad `json:"load"`
	Day           time.Weekday       `json:"-"`
	GroupIndex    int                `json:"group_index"`
	IsAnchor      bool               `json:"is_anchor"`
	AnchorSubSlot SubSlot            `json:"anchor_sub_slot"`
	DisplayRange  string             `json:"display_range"`
}
