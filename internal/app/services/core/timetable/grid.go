package timetable

import (
	"time"
	"unidash-service/internal/app/models"
)

// GridDays are the grid columns in display order. Sunday has no column.
var GridDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

const (
	ReasonOutsideGrid = "outside_grid"
	ReasonShadowed    = "shadowed_by_earlier_load"
)

// ScheduledLoad pairs a load with its schedule parsed once at ingestion.
type ScheduledLoad struct {
	Load   models.FacultyLoad
	Parsed ParsedSchedule
	Err    error
}

func ParseLoads(loads []models.FacultyLoad) []ScheduledLoad {
	out := make([]ScheduledLoad, 0, len(loads))
	for _, load := range loads {
		parsed, err := ParseSchedule(load.Schedule)
		out = append(out, ScheduledLoad{Load: load, Parsed: parsed, Err: err})
	}
	return out
}

// Diagnostic describes a load whose schedule could not be parsed.
type Diagnostic struct {
	LoadID      string `json:"load_id"`
	SubjectCode string `json:"subject_code"`
	Section     string `json:"section"`
	Schedule    string `json:"schedule"`
	Reason      string `json:"reason"`
	Detail      string `json:"detail"`
}

type CellRef struct {
	Day        time.Weekday
	GroupIndex int
}

// LoadPlacement lists the cells a load won. Reason is set when it won none.
type LoadPlacement struct {
	Load   models.FacultyLoad
	Parsed *ParsedSchedule
	Cells  []CellRef
	Reason string
}

type GridSummary struct {
	TotalLoads    int     `json:"total_loads"`
	PlacedLoads   int     `json:"placed_loads"`
	UnplacedLoads int     `json:"unplaced_loads"`
	OccupiedCells int     `json:"occupied_cells"`
	TotalUnits    float64 `json:"total_units"`
	TotalLecHours float64 `json:"total_lec_hours"`
	TotalLabHours float64 `json:"total_lab_hours"`
	ContactHours  float64 `json:"contact_hours"`
}

// WeekGrid is the Monday to Saturday by hour-group layout of one set of loads.
type WeekGrid struct {
	Days   []time.Weekday
	Groups []TimeSlotGroup
	Loads  []ScheduledLoad

	cells  [][]*PlacementResult
	owners [][]int
}

// BuildWeekGrid places loads cell by cell. When several loads claim a cell the earliest in
// input order keeps it; overlaps are not reported as conflicts.
func BuildWeekGrid(loads []models.FacultyLoad) *WeekGrid {
	grid := &WeekGrid{
		Days:   GridDays,
		Groups: GenerateTimeSlots(),
		Loads:  ParseLoads(loads),
	}

	grid.cells = make([][]*PlacementResult, len(grid.Days))
	grid.owners = make([][]int, len(grid.Days))
	for d, day := range grid.Days {
		grid.cells[d] = make([]*PlacementResult, len(grid.Groups))
		grid.owners[d] = make([]int, len(grid.Groups))
		for g, group := range grid.Groups {
			grid.owners[d][g] = -1
			for i, sl := range grid.Loads {
				if sl.Err != nil || !sl.Parsed.OccupiesCell(day, group) {
					continue
				}
				placement := ResolvePlacement(sl.Load, sl.Parsed, day, group)
				grid.cells[d][g] = &placement
				grid.owners[d][g] = i
				break
			}
		}
	}
	return grid
}

// Cell returns the placement at (day, groupIndex), if any.
func (w *WeekGrid) Cell(day time.Weekday, groupIndex int) (*PlacementResult, bool) {
	d := w.dayIndex(day)
	if d < 0 || groupIndex < 0 || groupIndex >= len(w.Groups) {
		return nil, false
	}
	cell := w.cells[d][groupIndex]
	return cell, cell != nil
}

func (w *WeekGrid) dayIndex(day time.Weekday) int {
	for i, d := range w.Days {
		if d == day {
			return i
		}
	}
	return -1
}

// Placements returns one entry per input load, in input order.
func (w *WeekGrid) Placements() []LoadPlacement {
	out := make([]LoadPlacement, len(w.Loads))
	for i, sl := range w.Loads {
		out[i].Load = sl.Load
		if sl.Err != nil {
			out[i].Reason = DiagnosticReason(sl.Err)
			continue
		}
		parsed := sl.Parsed
		out[i].Parsed = &parsed
	}

	for d, day := range w.Days {
		for g := range w.Groups {
			if owner := w.owners[d][g]; owner >= 0 {
				out[owner].Cells = append(out[owner].Cells, CellRef{Day: day, GroupIndex: g})
			}
		}
	}

	for i := range out {
		if out[i].Parsed == nil || len(out[i].Cells) > 0 {
			continue
		}
		out[i].Reason = ReasonOutsideGrid
		if w.claimsAnyCell(w.Loads[i].Parsed) {
			out[i].Reason = ReasonShadowed
		}
	}
	return out
}

func (w *WeekGrid) claimsAnyCell(parsed ParsedSchedule) bool {
	for _, day := range w.Days {
		for _, group := range w.Groups {
			if parsed.OccupiesCell(day, group) {
				return true
			}
		}
	}
	return false
}

// Diagnostics lists the loads whose schedules failed to parse.
func (w *WeekGrid) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for _, sl := range w.Loads {
		if sl.Err == nil {
			continue
		}
		out = append(out, Diagnostic{
			LoadID:      sl.Load.ID.String(),
			SubjectCode: sl.Load.SubjectCode,
			Section:     sl.Load.Section,
			Schedule:    sl.Load.Schedule,
			Reason:      DiagnosticReason(sl.Err),
			Detail:      sl.Err.Error(),
		})
	}
	return out
}

func (w *WeekGrid) Summary() GridSummary {
	summary := GridSummary{TotalLoads: len(w.Loads)}
	for _, p := range w.Placements() {
		if len(p.Cells) > 0 {
			summary.PlacedLoads++
		} else {
			summary.UnplacedLoads++
		}
		summary.OccupiedCells += len(p.Cells)
		summary.TotalUnits += float64(p.Load.Units)
		summary.TotalLecHours += float64(p.Load.LecHours)
		summary.TotalLabHours += float64(p.Load.LabHours)
		summary.ContactHours += p.Load.TotalHours()
	}
	return summary
}
