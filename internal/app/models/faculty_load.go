package models

// FacultyLoad is one subject-section assignment of a faculty member for an academic term,
// as served by the academic backend. Schedule is free text such as "MON & TUE 1:00PM-3:00PM".
// FacultyID is only present on term-wide listings.
type FacultyLoad struct {
	ID                 FlexString `json:"id"`
	FacultyID          FlexString `json:"faculty_id,omitempty"`
	SubjectCode        string     `json:"subject_code" validate:"required"`
	SubjectDescription string     `json:"subject_description"`
	Section            string     `json:"section"`
	Room               string     `json:"room"`
	Type               string     `json:"type"`
	LecHours           FlexFloat  `json:"lec_hours"`
	LabHours           FlexFloat  `json:"lab_hours"`
	Units              FlexFloat  `json:"units"`
	Schedule           string     `json:"schedule"`
}

// TotalHours returns lecture plus laboratory contact hours.
func (l FacultyLoad) TotalHours() float64 {
	return float64(l.LecHours) + float64(l.LabHours)
}
