package facultyloads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unidash-service/internal/app/contracts"
	"unidash-service/internal/app/models"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/exceptions"
	"unidash-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	maxResponseBytes = 8 << 20
	maxBodySnippet   = 512
)

// Response shapes the academic backend has been seen to use for the faculty-load listing.
const (
	envelopeArray        = "array"
	envelopeData         = "data"
	envelopeFacultyLoads = "data.faculty_loads"
)

type facultyLoadClient struct {
	BaseUrl    string
	httpClient *http.Client
	tokens     contracts.ServiceTokenSource
	Log        *zap.Logger
}

func NewFacultyLoadClient(baseUrl string, timeout time.Duration, tokens contracts.ServiceTokenSource, logger *zap.Logger) contracts.FacultyLoadClient {
	return &facultyLoadClient{
		BaseUrl:    baseUrl + "/" + constvars.ResourceFacultyLoads,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		Log:        logger,
	}
}

func (c *facultyLoadClient) FindFacultyLoads(ctx context.Context, query *models.FacultyLoadQuery) ([]models.FacultyLoad, error) {
	params := url.Values{}
	params.Set(constvars.QueryParamsFacultyID, query.FacultyID)
	params.Set(constvars.QueryParamsAcademicYear, query.AcademicYear)
	params.Set(constvars.QueryParamsSemester, query.Semester)
	return c.fetch(ctx, params)
}

func (c *facultyLoadClient) ListFacultyLoads(ctx context.Context, term *models.AcademicTerm) ([]models.FacultyLoad, error) {
	params := url.Values{}
	params.Set(constvars.QueryParamsAcademicYear, term.AcademicYear)
	params.Set(constvars.QueryParamsSemester, term.Semester)
	return c.fetch(ctx, params)
}

func (c *facultyLoadClient) fetch(ctx context.Context, params url.Values) ([]models.FacultyLoad, error) {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.BaseUrl + "?" + params.Encode()
	c.Log.Info("facultyLoadClient.fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, exceptions.ErrGetBackendResource(err, constvars.ResourceFacultyLoads)
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("facultyLoadClient.fetch unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendUnexpectedStatus(resp.StatusCode, constvars.ResourceFacultyLoads, snippet(body))
	}

	page, err := decodeFacultyLoads(body)
	if err != nil {
		c.Log.Error("facultyLoadClient.fetch error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	for _, rowErr := range page.rowErrors {
		c.Log.Warn("facultyLoadClient.fetch malformed faculty-load row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRowIndexKey, rowErr.index),
			zap.Bool(constvars.LoggingRowSkippedKey, rowErr.skipped),
			zap.Error(rowErr.err),
		)
	}

	c.Log.Info("facultyLoadClient.fetch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEnvelopeShapeKey, page.shape),
		zap.Int(constvars.LoggingLoadsCountKey, len(page.loads)),
	)
	return page.loads, nil
}

type facultyLoadPage struct {
	loads     []models.FacultyLoad
	shape     string
	rowErrors []rowError
}

// rowError records a listing element that did not decode cleanly. Skipped rows were not
// objects at all; the others were kept through salvageFacultyLoad.
type rowError struct {
	index   int
	skipped bool
	err     error
}

// decodeFacultyLoads accepts a bare array, {"data": [...]} or {"data": {"faculty_loads": [...]}}.
// A body reporting "success": false is treated as a backend failure even with status 200.
// Rows are decoded one by one so a single malformed record never costs the whole listing.
func decodeFacultyLoads(body []byte) (*facultyLoadPage, error) {
	if !gjson.ValidBytes(body) {
		return nil, exceptions.ErrDecodeResponse(errors.New("response is not valid JSON"), constvars.ResourceFacultyLoads)
	}

	root := gjson.ParseBytes(body)
	if success := root.Get("success"); success.Exists() && !success.Bool() {
		message := root.Get("message").String()
		return nil, exceptions.ErrBackendUnexpectedStatus(constvars.StatusOK, constvars.ResourceFacultyLoads, message)
	}

	var raw gjson.Result
	var shape string
	switch {
	case root.IsArray():
		raw, shape = root, envelopeArray
	case root.Get(envelopeData).IsArray():
		raw, shape = root.Get(envelopeData), envelopeData
	case root.Get(envelopeFacultyLoads).IsArray():
		raw, shape = root.Get(envelopeFacultyLoads), envelopeFacultyLoads
	default:
		return nil, exceptions.ErrUnknownEnvelope(constvars.ResourceFacultyLoads)
	}

	page := &facultyLoadPage{loads: make([]models.FacultyLoad, 0), shape: shape}
	index := 0
	raw.ForEach(func(_, row gjson.Result) bool {
		defer func() { index++ }()

		if !row.IsObject() {
			page.rowErrors = append(page.rowErrors, rowError{
				index:   index,
				skipped: true,
				err:     fmt.Errorf("faculty-load row is %s, not an object", row.Type),
			})
			return true
		}

		var load models.FacultyLoad
		if err := json.Unmarshal([]byte(row.Raw), &load); err != nil {
			page.rowErrors = append(page.rowErrors, rowError{index: index, err: err})
			load = salvageFacultyLoad(row)
		}
		page.loads = append(page.loads, load)
		return true
	})
	return page, nil
}

// salvageFacultyLoad keeps every field of a malformed row that has a usable type.
// A schedule that is not a string is dropped, so the load reports an empty schedule.
func salvageFacultyLoad(row gjson.Result) models.FacultyLoad {
	load := models.FacultyLoad{
		ID:                 models.FlexString(scalarString(row.Get("id"))),
		FacultyID:          models.FlexString(scalarString(row.Get("faculty_id"))),
		SubjectCode:        scalarString(row.Get("subject_code")),
		SubjectDescription: scalarString(row.Get("subject_description")),
		Section:            scalarString(row.Get("section")),
		Room:               scalarString(row.Get("room")),
		Type:               scalarString(row.Get("type")),
		LecHours:           models.FlexFloat(scalarFloat(row.Get("lec_hours"))),
		LabHours:           models.FlexFloat(scalarFloat(row.Get("lab_hours"))),
		Units:              models.FlexFloat(scalarFloat(row.Get("units"))),
	}
	if schedule := row.Get("schedule"); schedule.Type == gjson.String {
		load.Schedule = schedule.Str
	}
	return load
}

func scalarString(value gjson.Result) string {
	switch value.Type {
	case gjson.String, gjson.Number:
		return value.String()
	}
	return ""
}

// scalarFloat reads numbers and numeric strings; anything else, "3 units" included, is zero.
func scalarFloat(value gjson.Result) float64 {
	switch value.Type {
	case gjson.Number:
		return value.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.Str), 64)
		if err == nil {
			return parsed
		}
	}
	return 0
}

func snippet(body []byte) string {
	if len(body) > maxBodySnippet {
		return fmt.Sprintf("%s...", body[:maxBodySnippet])
	}
	return string(body)
}
