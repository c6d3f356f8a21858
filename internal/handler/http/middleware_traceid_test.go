package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/service"
)

// runTraceID pushes a single request through the trace-ID middleware and
// returns the recorder plus the request the next handler observed.
func runTraceID(t *testing.T, incomingTraceID string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	h := newTestHandler(t, &service.Services{})

	var observed *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observed = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	if incomingTraceID != "" {
		req.Header.Set(traceIDHeader, incomingTraceID)
	}
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, observed
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	rec, _ := runTraceID(t, "caller-supplied-id")

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUIDWhenAbsent(t *testing.T) {
	rec, _ := runTraceID(t, "")

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerInRequestContext(t *testing.T) {
	_, observed := runTraceID(t, "ctx-check")

	require.NotNil(t, observed)
	assert.NotNil(t, logger.FromRequest(observed))
}
