package models

import "fmt"

type AcademicTerm struct {
	AcademicYear string `json:"academic_year" validate:"required,academic_year"`
	Semester     string `json:"semester" validate:"required,oneof=1st 2nd summer"`
}

func (t AcademicTerm) String() string {
	return fmt.Sprintf("%s %s", t.AcademicYear, t.Semester)
}

// FacultyLoadQuery selects the loads of one faculty member for one term.
type FacultyLoadQuery struct {
	FacultyID string `json:"faculty_id" validate:"required,max=64"`
	AcademicTerm
}
