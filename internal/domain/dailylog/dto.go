package dailylog

type RowResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	EmployeeCode string  `json:"employeeCode"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"checkIn"`
	CheckOut     *string `json:"checkOut"`
	WorkingHours float64 `json:"workingHours"`
	LeaveType    *string `json:"leaveType,omitempty"`
	LeaveID      *string `json:"leaveId,omitempty"`
	Status       string  `json:"status"`
}

func ToRowResponse(r Row) RowResponse {
	return RowResponse{
		ID:           r.ID,
		Type:         string(r.Kind),
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		Department:   r.Department,
		Position:     r.Position,
		Date:         r.Date,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		WorkingHours: r.WorkingHours,
		LeaveType:    r.LeaveType,
		LeaveID:      r.LeaveID,
		Status:       r.Status,
	}
}

type LogsResponse struct {
	Date       string        `json:"date"`
	Logs       []RowResponse `json:"logs"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}
