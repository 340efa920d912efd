package contracts

import (
	"context"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/dto/requests"
	"unidash-service/internal/pkg/dto/responses"
)

type TimetableExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

type TimetableUsecase interface {
	TimeSlots(ctx context.Context) *responses.TimeSlots
	MatchSchedule(ctx context.Context, request *requests.MatchSchedule) (*responses.MatchSchedule, error)
	PreviewTimetable(ctx context.Context, request *requests.PreviewTimetable) (*responses.FacultyTimetable, error)
	BuildFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*responses.FacultyTimetable, error)
	ExportFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*TimetableExport, error)
	ArchiveFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*responses.TimetableArchive, error)
	AuditTerm(ctx context.Context, term *models.AcademicTerm) (*responses.TermAudit, error)
}
