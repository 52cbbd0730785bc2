package http

import (
	"net/http"

	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/stats"
	"github.com/staffpoint/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	DashboardStats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	statsService    stats.StatsService
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	statsService stats.StatsService,
) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		statsService:    statsService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var department, search *string
	if v := r.URL.Query().Get("department"); v != "" {
		department = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		search = &v
	}
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.employeeService.List(r.Context(), department, search, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Departments implements EmployeeHandler.
func (h *employeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DashboardStats implements EmployeeHandler.
func (h *employeeHandlerImpl) DashboardStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
