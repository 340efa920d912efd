package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter(t *testing.T) {
	current := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 60, 2, 30*time.Second)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/timetable/faculty/F-1/export", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("Burst Then Block", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
		assert.Equal(t, http.StatusOK, do("10.0.0.1:5001"))
		assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5002"))
	})

	t.Run("Other Clients Unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))
	})

	t.Run("Still Blocked After Refill", func(t *testing.T) {
		current = current.Add(10 * time.Second)
		assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5003"))
	})

	t.Run("Unblocked After Block Time", func(t *testing.T) {
		current = current.Add(25 * time.Second)
		assert.Equal(t, http.StatusOK, do("10.0.0.1:5004"))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}
	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
		assert.Equal(t, "client-123", seen)
	})

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, rr.Header().Get(constvars.HeaderXRequestID), seen)
	})
}
