package timetable

import (
	"time"
	"unidash-service/internal/pkg/dto/responses"
)

func toTimeSlotGroupResponses(groups []TimeSlotGroup) []responses.TimeSlotGroup {
	out := make([]responses.TimeSlotGroup, len(groups))
	for i, g := range groups {
		out[i] = responses.TimeSlotGroup{
			GroupIndex:    g.GroupIndex,
			StartTime:     g.StartTime,
			MiddleTime:    g.MiddleTime,
			EndTime:       g.EndTime,
			StartDisplay:  g.StartDisplay,
			MiddleDisplay: g.MiddleDisplay,
			EndDisplay:    g.EndDisplay,
			Label:         g.Label(),
		}
	}
	return out
}

func toTimeSlotsResponse(days []time.Weekday, groups []TimeSlotGroup) *responses.TimeSlots {
	return &responses.TimeSlots{
		Days:   dayNames(days),
		Groups: toTimeSlotGroupResponses(groups),
	}
}

func dayNames(days []time.Weekday) []string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return names
}

func toCellResponse(p *PlacementResult) *responses.TimetableCell {
	if p == nil {
		return nil
	}
	return &responses.TimetableCell{
		Day:                p.Day.String(),
		GroupIndex:         p.GroupIndex,
		LoadID:             p.Load.ID.String(),
		SubjectCode:        p.Load.SubjectCode,
		SubjectDescription: p.Load.SubjectDescription,
		Section:            p.Load.Section,
		Room:               p.Load.Room,
		Type:               p.Load.Type,
		Units:              float64(p.Load.Units),
		IsAnchor:           p.IsAnchor,
		AnchorSubSlot:      p.AnchorSubSlot.String(),
		DisplayRange:       p.DisplayRange,
	}
}

func toParsedScheduleResponse(p *ParsedSchedule) *responses.ParsedSchedule {
	if p == nil {
		return nil
	}
	return &responses.ParsedSchedule{
		Days:         dayNames(p.Days.Weekdays()),
		StartTime:    formatClock24(p.StartMinutes),
		EndTime:      formatClock24(p.EndMinutes),
		DisplayRange: DisplayRange(*p),
	}
}

func toDiagnosticResponses(diagnostics []Diagnostic) []responses.ScheduleDiagnostic {
	out := make([]responses.ScheduleDiagnostic, len(diagnostics))
	for i, d := range diagnostics {
		out[i] = responses.ScheduleDiagnostic{
			LoadID:      d.LoadID,
			SubjectCode: d.SubjectCode,
			Section:     d.Section,
			Schedule:    d.Schedule,
			Reason:      d.Reason,
			Detail:      d.Detail,
		}
	}
	return out
}

func toPlacementResponses(placements []LoadPlacement) []responses.LoadPlacement {
	out := make([]responses.LoadPlacement, len(placements))
	for i, p := range placements {
		cells := make([]responses.CellRef, len(p.Cells))
		for j, c := range p.Cells {
			cells[j] = responses.CellRef{Day: c.Day.String(), GroupIndex: c.GroupIndex}
		}
		out[i] = responses.LoadPlacement{
			LoadID:      p.Load.ID.String(),
			SubjectCode: p.Load.SubjectCode,
			Section:     p.Load.Section,
			Schedule:    p.Load.Schedule,
			Parsed:      toParsedScheduleResponse(p.Parsed),
			Cells:       cells,
			Reason:      p.Reason,
		}
	}
	return out
}

func toFacultyTimetableResponse(grid *WeekGrid, generatedAt time.Time) *responses.FacultyTimetable {
	days := make([]responses.TimetableDay, len(grid.Days))
	for d, day := range grid.Days {
		cells := make([]*responses.TimetableCell, len(grid.Groups))
		for g := range grid.Groups {
			cell, _ := grid.Cell(day, g)
			cells[g] = toCellResponse(cell)
		}
		days[d] = responses.TimetableDay{Day: day.String(), Cells: cells}
	}

	summary := grid.Summary()
	return &responses.FacultyTimetable{
		TimeSlots:   toTimeSlotGroupResponses(grid.Groups),
		Days:        days,
		Placements:  toPlacementResponses(grid.Placements()),
		Diagnostics: toDiagnosticResponses(grid.Diagnostics()),
		Summary: responses.TimetableSummary{
			TotalLoads:    summary.TotalLoads,
			PlacedLoads:   summary.PlacedLoads,
			UnplacedLoads: summary.UnplacedLoads,
			OccupiedCells: summary.OccupiedCells,
			TotalUnits:    summary.TotalUnits,
			TotalLecHours: summary.TotalLecHours,
			TotalLabHours: summary.TotalLabHours,
			ContactHours:  summary.ContactHours,
		},
		GeneratedAt: generatedAt,
	}
}
