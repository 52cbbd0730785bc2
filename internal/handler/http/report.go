package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/staffpoint/attendance-backend-go/internal/domain/report"
	"github.com/staffpoint/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportParams(r *http.Request) (startDate, endDate string, employeeID *string) {
	q := r.URL.Query()
	startDate = q.Get("startDate")
	endDate = q.Get("endDate")
	if v := q.Get("userId"); v != "" {
		employeeID = &v
	}
	return startDate, endDate, employeeID
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, employeeID := reportParams(r)

	result, err := h.reportService.Generate(r.Context(), startDate, endDate, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Download implements ReportHandler.
func (h *reportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, employeeID := reportParams(r)

	// buffer the whole file so errors still produce a clean JSON response
	var buf bytes.Buffer
	if err := h.reportService.WriteCSV(r.Context(), &buf, startDate, endDate, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-report-%s-to-%s.csv", startDate, endDate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}
