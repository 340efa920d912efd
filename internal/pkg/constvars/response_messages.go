package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Timetable messages
	GetTimeSlotsSuccessMessage        = "get time slots successfully"
	GetFacultyTimetableSuccessMessage = "get faculty timetable successfully"
	PreviewTimetableSuccessMessage    = "timetable preview built successfully"
	MatchScheduleSuccessMessage       = "schedule matched successfully"
	ArchiveTimetableSuccessMessage    = "timetable archived successfully"
	AuditTermSuccessMessage           = "schedule audit completed successfully"
)
