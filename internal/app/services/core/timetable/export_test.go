package timetable

import (
	"bytes"
	"testing"
	"unidash-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildTimetableWorkbook(t *testing.T) {
	loads := []models.FacultyLoad{
		{ID: "1", SubjectCode: "IT 101", SubjectDescription: "Intro", Section: "1A", Room: "CL1", Type: "LEC", LecHours: 2, LabHours: 1, Units: 3, Schedule: "MON & TUE 1:00PM-3:00PM"},
		{ID: "2", SubjectCode: "IT 102", Section: "1B", Units: 3, Schedule: "TBA"},
	}
	grid := BuildWeekGrid(loads)

	content, err := BuildTimetableWorkbook(grid, "Faculty fac-7 2024-2025 1st")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetTimetable, SheetLoads}, f.GetSheetList())

	t.Run("Timetable Sheet", func(t *testing.T) {
		value := func(cell string) string {
			v, err := f.GetCellValue(SheetTimetable, cell)
			require.NoError(t, err)
			return v
		}

		assert.Equal(t, "Faculty fac-7 2024-2025 1st", value("A1"))
		assert.Equal(t, "Time", value("A2"))
		assert.Equal(t, "Monday", value("B2"))
		assert.Equal(t, "Saturday", value("G2"))
		assert.Equal(t, "7:00 AM - 7:59 AM", value("A3"))
		assert.Equal(t, "8:00 PM - 8:59 PM", value("A16"))

		// 1 PM is group 6, so row 9.
		assert.Equal(t, "IT 101 (1A)\nCL1\n1:00PM-2:59PM", value("B9"))
		assert.Equal(t, "IT 101 (1A)\nCL1\n1:00PM-2:59PM", value("C9"))
		assert.Equal(t, "IT 101 (1A)\nCL1\n1:00PM-2:59PM", value("B10"), "continuation row carries the full label")
		assert.Empty(t, value("B11"))
		assert.Empty(t, value("D9"))
	})

	t.Run("Loads Sheet", func(t *testing.T) {
		rows, err := f.GetRows(SheetLoads)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, loadsSheetHeaders, rows[0])
		assert.Equal(t, "IT 101", rows[1][0])
		assert.Equal(t, "placed", rows[1][9])
		assert.Equal(t, "unplaced: unrecognized_days", rows[2][9])
	})
}
