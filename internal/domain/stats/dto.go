package stats

// MonthlyResponse summarizes one employee's attendance over a calendar
// month. Averages are over days with a check-in; LateCount is reserved
// and currently always 0.
type MonthlyResponse struct {
	Month        string  `json:"month"`
	TotalRecords int     `json:"totalRecords"`
	PresentDays  int     `json:"presentDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
	LateCount    int     `json:"lateCount"`
}

type DepartmentBreakdown struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// SnapshotResponse is the organization-wide dashboard picture for today.
// AbsentToday counts everyone without a check-in, on leave or not;
// AttendanceRate is presentToday over totalEmployees as a whole-number
// percentage clamped to 0..100.
type SnapshotResponse struct {
	TotalEmployees int                   `json:"totalEmployees"`
	PresentToday   int                   `json:"presentToday"`
	AbsentToday    int                   `json:"absentToday"`
	OnLeaveToday   int                   `json:"onLeaveToday"`
	AttendanceRate float64               `json:"attendanceRate"`
	Departments    []DepartmentBreakdown `json:"departments"`
}
