package timetable

import (
	"context"
	"fmt"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/dto/requests"
	"unidash-service/internal/pkg/dto/responses"
	"unidash-service/internal/pkg/exceptions"
	"unidash-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Diagnostic sources, carried on published messages.
const (
	SourceFacultyTimetable = "faculty_timetable"
	SourceTermAudit        = "term_audit"
)

type TimetableUsecase struct {
	loads     contracts.FacultyLoadClient
	storage   contracts.Storage
	publisher contracts.DiagnosticsPublisher
	config    *config.InternalConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewTimetableUsecase wires the usecase. storage and publisher may be nil, which disables
// archiving and diagnostic publishing respectively.
func NewTimetableUsecase(
	loads contracts.FacultyLoadClient,
	storage contracts.Storage,
	publisher contracts.DiagnosticsPublisher,
	config *config.InternalConfig,
	logger *zap.Logger,
) *TimetableUsecase {
	return &TimetableUsecase{
		loads:     loads,
		storage:   storage,
		publisher: publisher,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

var _ contracts.TimetableUsecase = (*TimetableUsecase)(nil)

func (uc *TimetableUsecase) TimeSlots(ctx context.Context) *responses.TimeSlots {
	return toTimeSlotsResponse(GridDays, GenerateTimeSlots())
}

func (uc *TimetableUsecase) MatchSchedule(ctx context.Context, request *requests.MatchSchedule) (*responses.MatchSchedule, error) {
	day, ok := utils.ParseWeekday(request.Day)
	if !ok {
		return nil, exceptions.ErrUnknownWeekday(request.Day)
	}
	group, ok := FindTimeSlotGroup(GenerateTimeSlots(), request.GroupIndex)
	if !ok {
		return nil, exceptions.ErrTimeSlotGroupOutOfBounds(request.GroupIndex)
	}

	response := &responses.MatchSchedule{
		Schedule:   request.Schedule,
		Day:        day.String(),
		GroupIndex: group.GroupIndex,
	}

	parsed, err := ParseSchedule(request.Schedule)
	if err != nil {
		response.Reason = DiagnosticReason(err)
		return response, nil
	}
	response.Parsed = toParsedScheduleResponse(&parsed)
	response.Matches = parsed.OccupiesCell(day, group)
	if response.Matches {
		placement := ResolvePlacement(models.FacultyLoad{Schedule: request.Schedule}, parsed, day, group)
		response.Placement = toCellResponse(&placement)
	}
	return response, nil
}

func (uc *TimetableUsecase) PreviewTimetable(ctx context.Context, request *requests.PreviewTimetable) (*responses.FacultyTimetable, error) {
	requestID := utils.GetRequestID(ctx)
	if limit := uc.config.Timetable.PreviewMaxLoads; limit > 0 && len(request.Loads) > limit {
		return nil, exceptions.ErrTooManyPreviewLoads(limit, len(request.Loads))
	}

	grid := BuildWeekGrid(request.Loads)
	uc.logDiagnostics(requestID, grid.Diagnostics())
	return toFacultyTimetableResponse(grid, uc.now()), nil
}

func (uc *TimetableUsecase) BuildFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*responses.FacultyTimetable, error) {
	grid, err := uc.buildFacultyGrid(ctx, query)
	if err != nil {
		return nil, err
	}

	response := toFacultyTimetableResponse(grid, uc.now())
	response.FacultyID = query.FacultyID
	response.AcademicYear = query.AcademicYear
	response.Semester = query.Semester
	return response, nil
}

func (uc *TimetableUsecase) ExportFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*contracts.TimetableExport, error) {
	requestID := utils.GetRequestID(ctx)
	grid, err := uc.buildFacultyGrid(ctx, query)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Faculty %s - %s", query.FacultyID, query.AcademicTerm.String())
	content, err := BuildTimetableWorkbook(grid, title)
	if err != nil {
		uc.logger.Error("TimetableUsecase.ExportFacultyTimetable error building workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildSpreadsheet(err)
	}

	fileName := utils.GenerateFileName("timetable", ".xlsx", uc.now(), query.FacultyID, query.AcademicYear, query.Semester)
	uc.logger.Info("TimetableUsecase.ExportFacultyTimetable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExportFileNameKey, fileName),
	)
	return &contracts.TimetableExport{
		FileName:    fileName,
		ContentType: constvars.MIMEApplicationXLSX,
		Content:     content,
	}, nil
}

func (uc *TimetableUsecase) ArchiveFacultyTimetable(ctx context.Context, query *models.FacultyLoadQuery) (*responses.TimetableArchive, error) {
	requestID := utils.GetRequestID(ctx)
	if uc.storage == nil {
		return nil, exceptions.ErrServerProcess(fmt.Errorf("timetable archive storage is not configured"))
	}

	export, err := uc.ExportFacultyTimetable(ctx, query)
	if err != nil {
		return nil, err
	}

	bucket := uc.config.Minio.BucketName
	objectName := fmt.Sprintf("%s/%s/%s/%s", query.AcademicYear, query.Semester, query.FacultyID, export.FileName)
	if _, err := uc.storage.UploadObject(ctx, bucket, objectName, export.ContentType, export.Content); err != nil {
		uc.logger.Error("TimetableUsecase.ArchiveFacultyTimetable error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucket),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.config.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("TimetableUsecase.ArchiveFacultyTimetable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucket),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.TimetableArchive{
		Bucket:     bucket,
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.now().Add(expiry),
	}, nil
}

// AuditTerm parses every load of the term and reports, per faculty, the ones that cannot be
// placed. Loads carry no faculty id of their own, so the term listing is grouped by the
// faculty_id field the backend adds to term-wide rows.
func (uc *TimetableUsecase) AuditTerm(ctx context.Context, term *models.AcademicTerm) (*responses.TermAudit, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("TimetableUsecase.AuditTerm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAcademicYearKey, term.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, term.Semester),
	)

	loads, err := uc.loads.ListFacultyLoads(ctx, term)
	if err != nil {
		return nil, err
	}

	report := &responses.TermAudit{
		AcademicYear: term.AcademicYear,
		Semester:     term.Semester,
		TotalLoads:   len(loads),
		Faculties:    make([]responses.FacultyAudit, 0),
		GeneratedAt:  uc.now(),
	}

	for _, group := range groupByFaculty(loads) {
		grid := BuildWeekGrid(group.loads)
		summary := grid.Summary()
		diagnostics := grid.Diagnostics()
		report.TotalDiagnostics += len(diagnostics)
		report.Faculties = append(report.Faculties, responses.FacultyAudit{
			FacultyID:     group.facultyID,
			TotalLoads:    summary.TotalLoads,
			UnplacedLoads: summary.UnplacedLoads,
			Diagnostics:   toDiagnosticResponses(diagnostics),
		})

		query := &models.FacultyLoadQuery{FacultyID: group.facultyID, AcademicTerm: *term}
		uc.logDiagnostics(requestID, diagnostics)
		uc.publishDiagnostics(ctx, SourceTermAudit, query, diagnostics)
	}

	uc.logger.Info("TimetableUsecase.AuditTerm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLoadsCountKey, report.TotalLoads),
		zap.Int(constvars.LoggingDiagnosticsKey, report.TotalDiagnostics),
	)
	return report, nil
}

func (uc *TimetableUsecase) buildFacultyGrid(ctx context.Context, query *models.FacultyLoadQuery) (*WeekGrid, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("TimetableUsecase.buildFacultyGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFacultyIDKey, query.FacultyID),
		zap.String(constvars.LoggingAcademicYearKey, query.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, query.Semester),
	)

	loads, err := uc.loads.FindFacultyLoads(ctx, query)
	if err != nil {
		uc.logger.Error("TimetableUsecase.buildFacultyGrid error fetching faculty loads",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	grid := BuildWeekGrid(loads)
	diagnostics := grid.Diagnostics()
	uc.logDiagnostics(requestID, diagnostics)
	uc.publishDiagnostics(ctx, SourceFacultyTimetable, query, diagnostics)

	summary := grid.Summary()
	uc.logger.Info("TimetableUsecase.buildFacultyGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLoadsCountKey, summary.TotalLoads),
		zap.Int(constvars.LoggingPlacedCountKey, summary.PlacedLoads),
		zap.Int(constvars.LoggingUnplacedCountKey, summary.UnplacedLoads),
	)
	return grid, nil
}

func (uc *TimetableUsecase) logDiagnostics(requestID string, diagnostics []Diagnostic) {
	for _, d := range diagnostics {
		uc.logger.Warn("TimetableUsecase schedule could not be placed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFacultyLoadIDKey, d.LoadID),
			zap.String(constvars.LoggingSubjectCodeKey, d.SubjectCode),
			zap.String(constvars.LoggingScheduleKey, d.Schedule),
			zap.String(constvars.LoggingReasonKey, d.Reason),
		)
	}
}

// publishDiagnostics is best effort: a broker failure is logged and the request carries on.
func (uc *TimetableUsecase) publishDiagnostics(ctx context.Context, source string, query *models.FacultyLoadQuery, diagnostics []Diagnostic) {
	if uc.publisher == nil || !uc.config.Timetable.PublishDiagnostics {
		return
	}
	for _, d := range diagnostics {
		message := &contracts.ScheduleDiagnosticMessage{
			RequestID:    utils.GetRequestID(ctx),
			Source:       source,
			FacultyID:    query.FacultyID,
			AcademicYear: query.AcademicYear,
			Semester:     query.Semester,
			LoadID:       d.LoadID,
			SubjectCode:  d.SubjectCode,
			Section:      d.Section,
			Schedule:     d.Schedule,
			Reason:       d.Reason,
			Detail:       d.Detail,
			OccurredAt:   uc.now(),
		}
		if err := uc.publisher.PublishScheduleDiagnostic(ctx, message); err != nil {
			uc.logger.Warn("TimetableUsecase.publishDiagnostics failed to publish",
				zap.String(constvars.LoggingRequestIDKey, message.RequestID),
				zap.String(constvars.LoggingFacultyLoadIDKey, d.LoadID),
				zap.Error(err),
			)
		}
	}
}

type facultyLoads struct {
	facultyID string
	loads     []models.FacultyLoad
}

// groupByFaculty keeps first-seen faculty order and the input order of loads within each
// faculty, so first-match placement is the same as on the per-faculty endpoint.
func groupByFaculty(loads []models.FacultyLoad) []facultyLoads {
	var groups []facultyLoads
	index := make(map[string]int)
	for _, load := range loads {
		id := string(load.FacultyID)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, facultyLoads{facultyID: id})
		}
		groups[i].loads = append(groups[i].loads, load)
	}
	return groups
}
