package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffpoint/attendance-backend-go/internal/domain/dailylog"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
)

type stubDailyLogService struct {
	lastDate string
	called   bool
}

func (s *stubDailyLogService) Logs(ctx context.Context, date string, employeeID *string, page, limit int) (*dailylog.LogsResponse, error) {
	s.called = true
	s.lastDate = date
	return &dailylog.LogsResponse{Date: date}, nil
}

func logsHandler(svc dailylog.DailyLogService) AttendanceHandler {
	fixed := clock.Fixed{T: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewAttendanceHandler(nil, svc, nil, fixed)
}

func TestLogs_DateDefaultsToToday(t *testing.T) {
	svc := &stubDailyLogService{}
	h := logsHandler(svc)

	rec := httptest.NewRecorder()
	h.Logs(rec, httptest.NewRequest(http.MethodGet, "/api/attendance/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.called)
	assert.Equal(t, "2025-03-10", svc.lastDate)
}

func TestLogs_MalformedDateRejected(t *testing.T) {
	svc := &stubDailyLogService{}
	h := logsHandler(svc)

	rec := httptest.NewRecorder()
	h.Logs(rec, httptest.NewRequest(http.MethodGet, "/api/attendance/logs?date=03-10-2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called)
}

func TestLogs_ExplicitDatePassedThrough(t *testing.T) {
	svc := &stubDailyLogService{}
	h := logsHandler(svc)

	rec := httptest.NewRecorder()
	h.Logs(rec, httptest.NewRequest(http.MethodGet, "/api/attendance/logs?date=2025-02-28", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-02-28", svc.lastDate)
}
