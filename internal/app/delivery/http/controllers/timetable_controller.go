package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/dto/requests"
	"unidash-service/internal/pkg/exceptions"
	"unidash-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TimetableController struct {
	Log              *zap.Logger
	TimetableUsecase contracts.TimetableUsecase
	InternalConfig   *config.InternalConfig
}

func NewTimetableController(logger *zap.Logger, timetableUsecase contracts.TimetableUsecase, internalConfig *config.InternalConfig) *TimetableController {
	return &TimetableController{
		Log:              logger,
		TimetableUsecase: timetableUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *TimetableController) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	result := ctrl.TimetableUsecase.TimeSlots(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSlotsSuccessMessage, result)
}

func (ctrl *TimetableController) MatchSchedule(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.MatchSchedule)
	if err := ctrl.decodeBody(w, r, request); err != nil {
		ctrl.Log.Error("TimetableController.MatchSchedule error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.TimetableUsecase.MatchSchedule(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MatchScheduleSuccessMessage, result)
}

func (ctrl *TimetableController) PreviewTimetable(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.PreviewTimetable)
	if err := ctrl.decodeBody(w, r, request); err != nil {
		ctrl.Log.Error("TimetableController.PreviewTimetable error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.TimetableUsecase.PreviewTimetable(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviewTimetableSuccessMessage, result)
}

func (ctrl *TimetableController) GetFacultyTimetable(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	query, err := ctrl.facultyLoadQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("TimetableController.GetFacultyTimetable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFacultyIDKey, query.FacultyID),
	)

	ctx, cancel := ctrl.backendContext(r)
	defer cancel()

	result, err := ctrl.TimetableUsecase.BuildFacultyTimetable(ctx, query)
	if err != nil {
		ctrl.buildUsecaseError(w, "TimetableController.GetFacultyTimetable", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFacultyTimetableSuccessMessage, result)
}

func (ctrl *TimetableController) ExportFacultyTimetable(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	query, err := ctrl.facultyLoadQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.backendContext(r)
	defer cancel()

	export, err := ctrl.TimetableUsecase.ExportFacultyTimetable(ctx, query)
	if err != nil {
		ctrl.buildUsecaseError(w, "TimetableController.ExportFacultyTimetable", requestID, err)
		return
	}

	utils.BuildFileResponse(w, export.ContentType, export.FileName, export.Content)
}

func (ctrl *TimetableController) ArchiveFacultyTimetable(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	query, err := ctrl.facultyLoadQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.backendContext(r)
	defer cancel()

	result, err := ctrl.TimetableUsecase.ArchiveFacultyTimetable(ctx, query)
	if err != nil {
		ctrl.buildUsecaseError(w, "TimetableController.ArchiveFacultyTimetable", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ArchiveTimetableSuccessMessage, result)
}

func (ctrl *TimetableController) AuditTerm(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	term := &models.AcademicTerm{
		AcademicYear: r.URL.Query().Get(constvars.QueryParamsAcademicYear),
		Semester:     r.URL.Query().Get(constvars.QueryParamsSemester),
	}
	if err := utils.ValidateStruct(term); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.backendContext(r)
	defer cancel()

	result, err := ctrl.TimetableUsecase.AuditTerm(ctx, term)
	if err != nil {
		ctrl.buildUsecaseError(w, "TimetableController.AuditTerm", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AuditTermSuccessMessage, result)
}

func (ctrl *TimetableController) facultyLoadQuery(r *http.Request) (*models.FacultyLoadQuery, error) {
	facultyID := chi.URLParam(r, constvars.URLParamFacultyID)
	if err := utils.ValidateUrlParamID(facultyID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamFacultyID)
	}

	query := &models.FacultyLoadQuery{
		FacultyID: facultyID,
		AcademicTerm: models.AcademicTerm{
			AcademicYear: r.URL.Query().Get(constvars.QueryParamsAcademicYear),
			Semester:     r.URL.Query().Get(constvars.QueryParamsSemester),
		},
	}
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return query, nil
}

func (ctrl *TimetableController) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	limit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// backendContext bounds a request that calls the academic backend. Archive and audit do more
// than one round trip, so the budget is twice the backend timeout.
func (ctrl *TimetableController) backendContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := 2 * time.Duration(ctrl.InternalConfig.Backend.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *TimetableController) buildUsecaseError(w http.ResponseWriter, method, requestID string, err error) {
	ctrl.Log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
