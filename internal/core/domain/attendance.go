package domain

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceHalfDay = "half-day"
)

// AttendanceRecord is one employee's clock record for one day. Dates are
// YYYY-MM-DD and times HH:MM, matching the dashboard display format.
type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out,omitempty"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}
