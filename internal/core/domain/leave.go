package domain

const (
	LeaveAnnual    = "annual"
	LeaveSick      = "sick"
	LeavePersonal  = "personal"
	LeaveMaternity = "maternity"
	LeavePaternity = "paternity"
)

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest tracks one leave application through its approval lifecycle.
// Only pending requests may be approved or rejected.
type LeaveRequest struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Days        int    `json:"days"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date"`
	ApprovedBy  string `json:"approved_by,omitempty"`
}
