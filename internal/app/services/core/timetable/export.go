package timetable

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetTimetable = "Timetable"
	SheetLoads     = "Loads"

	timetableHeaderRow = 2
	timetableFirstRow  = 3
)

var loadsSheetHeaders = []string{
	"Subject Code",
	"Description",
	"Section",
	"Room",
	"Type",
	"Lec Hours",
	"Lab Hours",
	"Units",
	"Schedule",
	"Status",
}

// BuildTimetableWorkbook renders grid as an XLSX workbook with the weekly layout on one sheet
// and the underlying loads on another.
func BuildTimetableWorkbook(grid *WeekGrid, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetTimetable); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	if err := writeTimetableSheet(f, grid, title, headerStyle, cellStyle); err != nil {
		return nil, err
	}
	if err := writeLoadsSheet(f, grid, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTimetableSheet(f *excelize.File, grid *WeekGrid, title string, headerStyle, cellStyle int) error {
	if err := f.SetCellStr(SheetTimetable, "A1", title); err != nil {
		return err
	}

	header := append([]string{"Time"}, dayNames(grid.Days)...)
	for i, value := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, timetableHeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetTimetable, cell, value); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), timetableHeaderRow)
	if err := f.SetCellStyle(SheetTimetable, "A2", lastHeader, headerStyle); err != nil {
		return err
	}

	for g, group := range grid.Groups {
		row := timetableFirstRow + g
		if err := f.SetCellStr(SheetTimetable, fmt.Sprintf("A%d", row), group.Label()); err != nil {
			return err
		}
		for d, day := range grid.Days {
			placement, ok := grid.Cell(day, g)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(d+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(SheetTimetable, cell, cellText(placement)); err != nil {
				return err
			}
		}
	}

	lastRow := timetableFirstRow + len(grid.Groups) - 1
	lastCell, _ := excelize.CoordinatesToCellName(len(header), lastRow)
	if err := f.SetCellStyle(SheetTimetable, "B3", lastCell, cellStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetTimetable, "A", "A", 20); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(SheetTimetable, "B", lastCol, 24)
}

// cellText is the same for every row a class occupies.
func cellText(p *PlacementResult) string {
	label := p.Load.SubjectCode
	if p.Load.Section != "" {
		label = fmt.Sprintf("%s (%s)", p.Load.SubjectCode, p.Load.Section)
	}

	lines := []string{label}
	if p.Load.Room != "" {
		lines = append(lines, p.Load.Room)
	}
	lines = append(lines, p.DisplayRange)
	return strings.Join(lines, "\n")
}

func writeLoadsSheet(f *excelize.File, grid *WeekGrid, headerStyle int) error {
	if _, err := f.NewSheet(SheetLoads); err != nil {
		return err
	}

	for i, header := range loadsSheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetLoads, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(loadsSheetHeaders), 1)
	if err := f.SetCellStyle(SheetLoads, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, p := range grid.Placements() {
		row := i + 2
		status := "placed"
		if len(p.Cells) == 0 {
			status = "unplaced: " + p.Reason
		}
		values := []interface{}{
			p.Load.SubjectCode,
			p.Load.SubjectDescription,
			p.Load.Section,
			p.Load.Room,
			p.Load.Type,
			float64(p.Load.LecHours),
			float64(p.Load.LabHours),
			float64(p.Load.Units),
			p.Load.Schedule,
			status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetLoads, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(SheetLoads, "A", "J", 18)
}
