package report

type RowStatus string

const (
	StatusComplete   RowStatus = "Complete"
	StatusIncomplete RowStatus = "Incomplete"
	StatusAbsent     RowStatus = "Absent"
)

// Row is one attendance record rendered for reporting. CheckIn and
// CheckOut are 12-hour clock strings, or "-" when missing.
type Row struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	EmployeeCode string  `json:"employeeCode"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	Date         string  `json:"date"`
	Day          string  `json:"day"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	WorkingHours float64 `json:"workingHours"`
	Status       string  `json:"status"`
}

// Summary aggregates a report's rows. The percentages are shares of
// TotalRecords and stay 0 when the report is empty; ProductivityRate
// measures total hours against an eight hour day per record.
type Summary struct {
	TotalRecords         int     `json:"totalRecords"`
	CompleteRecords      int     `json:"completeRecords"`
	IncompleteRecords    int     `json:"incompleteRecords"`
	AbsentRecords        int     `json:"absentRecords"`
	CompletePercentage   float64 `json:"completePercentage"`
	IncompletePercentage float64 `json:"incompletePercentage"`
	AbsentPercentage     float64 `json:"absentPercentage"`
	TotalHours           float64 `json:"totalHours"`
	AverageHours         float64 `json:"averageHours"`
	AverageHoursComplete float64 `json:"averageHoursForCompleteRecordsOnly"`
	LateCount            int     `json:"lateCount"`
	ProductivityRate     float64 `json:"productivityRate"`
}

type ReportResponse struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Rows      []Row   `json:"records"`
	Summary   Summary `json:"summary"`
}
