package ports

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
)

// EmployeeService exposes staff listings and administration.
type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error)
	Deactivate(ctx context.Context, id string) (*domain.Employee, error)
	Departments(ctx context.Context) ([]string, error)
}

// EmployeeInput carries the writable fields of an employee record.
type EmployeeInput struct {
	Name       string
	Email      string
	Department string
	Position   string
	JoinDate   string
	Salary     float64
}

// AttendanceService exposes the daily clock sheet.
type AttendanceService interface {
	List(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error)
	CheckIn(ctx context.Context, employeeID, date, timeIn, notes string) (*domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, employeeID, date, timeOut string) (*domain.AttendanceRecord, error)
	Update(ctx context.Context, id string, status, notes string) (*domain.AttendanceRecord, error)
}

// LeaveService exposes the leave request lifecycle.
type LeaveService interface {
	List(ctx context.Context, filter LeaveFilter) ([]domain.LeaveRequest, error)
	Submit(ctx context.Context, input LeaveInput) (*domain.LeaveRequest, error)
	Approve(ctx context.Context, id string, approver *domain.User) (*domain.LeaveRequest, error)
	Reject(ctx context.Context, id string, approver *domain.User) (*domain.LeaveRequest, error)
}

// LeaveInput carries a new leave application.
type LeaveInput struct {
	EmployeeID string
	Type       string
	StartDate  string
	EndDate    string
	Days       int
	Reason     string
}

// PerformanceService exposes review cycles.
type PerformanceService interface {
	List(ctx context.Context, employeeID string) ([]domain.PerformanceReview, error)
	Get(ctx context.Context, id string) (*domain.PerformanceReview, error)
	Create(ctx context.Context, review domain.PerformanceReview) (*domain.PerformanceReview, error)
	Update(ctx context.Context, review domain.PerformanceReview) (*domain.PerformanceReview, error)
}

// PayrollService exposes pay statements and aggregates.
type PayrollService interface {
	List(ctx context.Context, filter PayrollFilter) ([]domain.PayrollSummary, error)
	Totals(ctx context.Context, month string, year int) (*PayrollTotals, error)
}

// PayrollTotals aggregates one month's payroll run.
type PayrollTotals struct {
	Month     string  `json:"month"`
	Year      int     `json:"year"`
	Employees int     `json:"employees"`
	Gross     float64 `json:"gross"`
	Net       float64 `json:"net"`
}

// AnnouncementService exposes notices scoped by department visibility.
type AnnouncementService interface {
	List(ctx context.Context, viewer *domain.User) ([]domain.Announcement, error)
	Create(ctx context.Context, input AnnouncementInput, author *domain.User) (*domain.Announcement, error)
	Update(ctx context.Context, id string, input AnnouncementInput) (*domain.Announcement, error)
	MarkRead(ctx context.Context, id, readerID string) (*domain.Announcement, error)
}

// AnnouncementInput carries the writable fields of a notice.
type AnnouncementInput struct {
	Title      string
	Content    string
	Priority   string
	Department string
}

// OverviewService aggregates counts for the role landing payload.
type OverviewService interface {
	Summary(ctx context.Context, viewer *domain.User) (*OverviewSummary, error)
}

// OverviewSummary is the role home dashboard payload.
type OverviewSummary struct {
	TotalEmployees    int `json:"total_employees"`
	ActiveEmployees   int `json:"active_employees"`
	PendingLeave      int `json:"pending_leave"`
	PresentToday      int `json:"present_today"`
	OpenAnnouncements int `json:"open_announcements"`
}
