package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultyLoadDecoding(t *testing.T) {
	t.Run("Numeric Fields As Numbers", func(t *testing.T) {
		raw := `{"id": 42, "subject_code": "IT 101", "lec_hours": 2, "lab_hours": 3, "units": 3, "schedule": "M/W/F 8:00AM-9:00AM"}`

		var load FacultyLoad
		require.NoError(t, json.Unmarshal([]byte(raw), &load))

		assert.Equal(t, FlexString("42"), load.ID, "numeric id should be kept as its decimal text")
		assert.Equal(t, 5.0, load.TotalHours(), "lecture and lab hours should add up")
		assert.Equal(t, FlexFloat(3), load.Units)
	})

	t.Run("Numeric Fields As Strings", func(t *testing.T) {
		raw := `{"id": "L-7", "subject_code": "IT 102", "lec_hours": "1.5", "lab_hours": "", "units": null}`

		var load FacultyLoad
		require.NoError(t, json.Unmarshal([]byte(raw), &load))

		assert.Equal(t, "L-7", load.ID.String())
		assert.Equal(t, FlexFloat(1.5), load.LecHours)
		assert.Equal(t, FlexFloat(0), load.LabHours, "empty string should decode as zero")
		assert.Equal(t, FlexFloat(0), load.Units, "null should decode as zero")
	})

	t.Run("Invalid Numeric String", func(t *testing.T) {
		raw := `{"subject_code": "IT 103", "units": "three"}`

		var load FacultyLoad
		assert.Error(t, json.Unmarshal([]byte(raw), &load), "non numeric units should be rejected")
	})
}

func TestAcademicTermString(t *testing.T) {
	term := AcademicTerm{AcademicYear: "2024-2025", Semester: "1st"}
	assert.Equal(t, "2024-2025 1st", term.String())
}
