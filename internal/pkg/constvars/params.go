package constvars

const (
	QueryParamsFacultyID    = "faculty_id"
	QueryParamsAcademicYear = "academic_year"
	QueryParamsSemester     = "semester"
)

const (
	URLParamFacultyID = "facultyID"
)
