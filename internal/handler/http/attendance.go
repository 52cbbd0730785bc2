package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/staffpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/staffpoint/attendance-backend-go/internal/domain/dailylog"
	"github.com/staffpoint/attendance-backend-go/internal/domain/stats"
	"github.com/staffpoint/attendance-backend-go/internal/handler/http/response"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/clock"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	RecentToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	dailyLogService   dailylog.DailyLogService
	statsService      stats.StatsService
	clock             clock.Clock
}

func NewAttendanceHandler(
	attendanceService attendance.AttendanceService,
	dailyLogService dailylog.DailyLogService,
	statsService stats.StatsService,
	clk clock.Clock,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		dailyLogService:   dailyLogService,
		statsService:      statsService,
		clock:             clk,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	// an empty body is a valid check-in without location
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// TodayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logs implements AttendanceHandler.
func (h *attendanceHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = clock.DateString(h.clock.Now())
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Query parameter 'date' must be a valid YYYY-MM-DD date", nil)
		return
	}

	var employeeID *string
	if v := r.URL.Query().Get("userId"); v != "" {
		employeeID = &v
	}
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 50)

	result, err := h.dailyLogService.Logs(r.Context(), date, employeeID, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	// zero means the current year/month
	year := queryInt(r, "year", 0)
	month := queryInt(r, "month", 0)
	if month > 12 {
		response.BadRequest(w, "Query parameter 'month' must be between 1 and 12", nil)
		return
	}

	result, err := h.statsService.Monthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", result)
}

// RecentToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecentToday(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	result, err := h.attendanceService.RecentToday(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
