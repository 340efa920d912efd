package responses

import "time"

type TimeSlotGroup struct {
	GroupIndex    int    `json:"group_index"`
	StartTime     string `json:"start_time"`
	MiddleTime    string `json:"middle_time"`
	EndTime       string `json:"end_time"`
	StartDisplay  string `json:"start_display"`
	MiddleDisplay string `json:"middle_display"`
	EndDisplay    string `json:"end_display"`
	Label         string `json:"label"`
}

type TimeSlots struct {
	Days   []string        `json:"days"`
	Groups []TimeSlotGroup `json:"groups"`
}

type TimetableCell struct {
	Day                string  `json:"day"`
	GroupIndex         int     `json:"group_index"`
	LoadID             string  `json:"load_id"`
	SubjectCode        string  `json:"subject_code"`
	SubjectDescription string  `json:"subject_description"`
	Section            string  `json:"section"`
	Room               string  `json:"room"`
	Type               string  `json:"type"`
	Units              float64 `json:"units"`
	IsAnchor           bool    `json:"is_anchor"`
	AnchorSubSlot      string  `json:"anchor_sub_slot"`
	DisplayRange       string  `json:"display_range"`
}

// TimetableDay holds one column of the grid. Cells has one entry per time slot group; empty
// cells are null.
type TimetableDay struct {
	Day   string           `json:"day"`
	Cells []*TimetableCell `json:"cells"`
}

type ParsedSchedule struct {
	Days         []string `json:"days"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	DisplayRange string   `json:"display_range"`
}

type CellRef struct {
	Day        string `json:"day"`
	GroupIndex int    `json:"group_index"`
}

type LoadPlacement struct {
	LoadID      string          `json:"load_id"`
	SubjectCode string          `json:"subject_code"`
	Section     string          `json:"section"`
	Schedule    string          `json:"schedule"`
	Parsed      *ParsedSchedule `json:"parsed,omitempty"`
	Cells       []CellRef       `json:"cells"`
	Reason      string          `json:"reason,omitempty"`
}

type ScheduleDiagnostic struct {
	LoadID      string `json:"load_id"`
	SubjectCode string `json:"subject_code"`
	Section     string `json:"section"`
	Schedule    string `json:"schedule"`
	Reason      string `json:"reason"`
	Detail      string `json:"detail"`
}

type TimetableSummary struct {
	TotalLoads    int     `json:"total_loads"`
	PlacedLoads   int     `json:"placed_loads"`
	UnplacedLoads int     `json:"unplaced_loads"`
	OccupiedCells int     `json:"occupied_cells"`
	TotalUnits    float64 `json:"total_units"`
	TotalLecHours float64 `json:"total_lec_hours"`
	TotalLabHours float64 `json:"total_lab_hours"`
	ContactHours  float64 `json:"contact_hours"`
}

type FacultyTimetable struct {
	FacultyID    string               `json:"faculty_id,omitempty"`
	AcademicYear string               `json:"academic_year,omitempty"`
	Semester     string               `json:"semester,omitempty"`
	TimeSlots    []TimeSlotGroup      `json:"time_slots"`
	Days         []TimetableDay       `json:"days"`
	Placements   []LoadPlacement      `json:"placements"`
	Diagnostics  []ScheduleDiagnostic `json:"diagnostics"`
	Summary      TimetableSummary     `json:"summary"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

type MatchSchedule struct {
	Schedule   string          `json:"schedule"`
	Day        string          `json:"day"`
	GroupIndex int             `json:"group_index"`
	Matches    bool            `json:"matches"`
	Parsed     *ParsedSchedule `json:"parsed,omitempty"`
	Placement  *TimetableCell  `json:"placement,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

type TimetableArchive struct {
	Bucket     string    `json:"bucket"`
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type FacultyAudit struct {
	FacultyID     string               `json:"faculty_id"`
	TotalLoads    int                  `json:"total_loads"`
	UnplacedLoads int                  `json:"unplaced_loads"`
	Diagnostics   []ScheduleDiagnostic `json:"diagnostics"`
}

type TermAudit struct {
	AcademicYear     string         `json:"academic_year"`
	Semester         string         `json:"semester"`
	TotalLoads       int            `json:"total_loads"`
	TotalDiagnostics int            `json:"total_diagnostics"`
	Faculties        []FacultyAudit `json:"faculties"`
	GeneratedAt      time.Time      `json:"generated_at"`
}
