package memstore

import "github.com/qubitara/hr-console/internal/core/domain"

// Seed data mirrors the mock directory the dashboard originally shipped with.

var seedEmployees = []domain.Employee{
	{ID: "1", Name: "John Doe", Email: "john.doe@company.com", Department: "Engineering", Position: "Senior Developer", Status: domain.EmployeeActive, JoinDate: "2022-01-15", Salary: 85000},
	{ID: "2", Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Department: "Marketing", Position: "Marketing Manager", Status: domain.EmployeeActive, JoinDate: "2021-08-22", Salary: 72000},
	{ID: "3", Name: "Mike Chen", Email: "mike.chen@company.com", Department: "Engineering", Position: "Frontend Developer", Status: domain.EmployeeActive, JoinDate: "2023-03-10", Salary: 68000},
	{ID: "4", Name: "Emily Rodriguez", Email: "emily.rodriguez@company.com", Department: "Sales", Position: "Sales Representative", Status: domain.EmployeeInactive, JoinDate: "2020-11-05", Salary: 55000},
	{ID: "5", Name: "David Wilson", Email: "david.wilson@company.com", Department: "HR", Position: "HR Specialist", Status: domain.EmployeeActive, JoinDate: "2022-06-18", Salary: 62000},
}

var seedAttendance = []domain.AttendanceRecord{
	{ID: "1", EmployeeID: "1", Date: "2024-01-15", TimeIn: "09:00", TimeOut: "17:30", Status: domain.AttendancePresent, Notes: "On time"},
	{ID: "2", EmployeeID: "2", Date: "2024-01-15", TimeIn: "09:15", TimeOut: "17:45", Status: domain.AttendanceLate, Notes: "Traffic delay"},
	{ID: "3", EmployeeID: "3", Date: "2024-01-15", TimeIn: "09:00", TimeOut: "13:00", Status: domain.AttendanceHalfDay, Notes: "Medical appointment"},
	{ID: "4", EmployeeID: "4", Date: "2024-01-15", Status: domain.AttendanceAbsent, Notes: "Sick leave"},
	{ID: "5", EmployeeID: "5", Date: "2024-01-15", TimeIn: "08:45", TimeOut: "17:15", Status: domain.AttendancePresent, Notes: "Early arrival"},
}

var seedLeave = []domain.LeaveRequest{
	{ID: "1", EmployeeID: "1", Type: domain.LeaveAnnual, StartDate: "2024-02-15", EndDate: "2024-02-19", Days: 5, Reason: "Family vacation", Status: domain.LeavePending, AppliedDate: "2024-01-15"},
	{ID: "2", EmployeeID: "2", Type: domain.LeaveSick, StartDate: "2024-01-20", EndDate: "2024-01-22", Days: 3, Reason: "Medical treatment", Status: domain.LeaveApproved, AppliedDate: "2024-01-18", ApprovedBy: "HR Manager"},
	{ID: "3", EmployeeID: "3", Type: domain.LeavePersonal, StartDate: "2024-01-25", EndDate: "2024-01-25", Days: 1, Reason: "Personal matters", Status: domain.LeaveRejected, AppliedDate: "2024-01-20"},
}

var seedAnnouncements = []domain.Announcement{
	{
		ID:          "1",
		Title:       "Year-End Performance Reviews",
		Content:     "All performance reviews must be completed by December 31st. Please schedule meetings with your direct reports and submit evaluations through the HR portal.",
		Priority:    domain.PriorityHigh,
		Department:  domain.AllDepartments,
		CreatedBy:   "HR Team",
		CreatedDate: "2024-01-10",
		ReadBy:      []string{"1", "2", "3"},
	},
	{
		ID:          "2",
		Title:       "New Health Insurance Policy",
		Content:     "We are pleased to announce enhanced health insurance benefits starting February 1st. The new policy includes dental and vision coverage.",
		Priority:    domain.PriorityMedium,
		Department:  domain.AllDepartments,
		CreatedBy:   "Benefits Team",
		CreatedDate: "2024-01-08",
		ReadBy:      []string{"1", "4", "5"},
	},
	{
		ID:          "3",
		Title:       "Engineering Team Retreat",
		Content:     "The Engineering team retreat is scheduled for March 15-17 at Lake Tahoe. Please confirm your attendance by February 1st.",
		Priority:    domain.PriorityLow,
		Department:  "Engineering",
		CreatedBy:   "Engineering Manager",
		CreatedDate: "2024-01-05",
		ReadBy:      []string{"2", "3"},
	},
	{
		ID:          "4",
		Title:       "Office Closure - Martin Luther King Jr. Day",
		Content:     "The office will be closed on Monday, January 15th in observance of Martin Luther King Jr. Day. All team members have the day off.",
		Priority:    domain.PriorityMedium,
		Department:  domain.AllDepartments,
		CreatedBy:   "HR Team",
		CreatedDate: "2024-01-03",
		ReadBy:      []string{"1", "2", "3", "4", "5"},
	},
}

var seedPayroll = []domain.PayrollSummary{
	{ID: "1", EmployeeID: "1", Month: "December", Year: 2024, BasicSalary: 7083, Allowances: 850, Deductions: 1625, NetSalary: 6308, PaymentDate: "2024-01-01", Status: domain.PayrollPaid},
	{ID: "2", EmployeeID: "2", Month: "December", Year: 2024, BasicSalary: 6000, Allowances: 720, Deductions: 1380, NetSalary: 5340, PaymentDate: "2024-01-01", Status: domain.PayrollPaid},
	{ID: "3", EmployeeID: "3", Month: "December", Year: 2024, BasicSalary: 5667, Allowances: 680, Deductions: 1300, NetSalary: 5047, PaymentDate: "2024-01-01", Status: domain.PayrollPaid},
	{ID: "4", EmployeeID: "5", Month: "December", Year: 2024, BasicSalary: 5167, Allowances: 620, Deductions: 1190, NetSalary: 4597, PaymentDate: "2024-01-01", Status: domain.PayrollPaid},
	{ID: "5", EmployeeID: "1", Month: "January", Year: 2025, BasicSalary: 7083, Allowances: 850, Deductions: 1625, NetSalary: 6308, Status: domain.PayrollProcessing},
	{ID: "6", EmployeeID: "2", Month: "January", Year: 2025, BasicSalary: 6000, Allowances: 720, Deductions: 1380, NetSalary: 5340, Status: domain.PayrollPending},
}

var seedReviews = []domain.PerformanceReview{
	{
		ID:            "1",
		EmployeeID:    "2",
		ReviewPeriod:  "Q4 2024",
		OverallRating: 4.9,
		Goals: []domain.Goal{
			{ID: "1", Title: "Launch spring campaign", Status: domain.GoalCompleted, DueDate: "2024-03-31", Progress: 100},
			{ID: "2", Title: "Grow newsletter subscribers", Status: domain.GoalInProgress, DueDate: "2024-06-30", Progress: 70},
		},
		Feedback:   "Consistently exceeds targets and mentors the junior team.",
		ReviewDate: "2024-01-12",
		ReviewerID: "2",
	},
	{
		ID:            "2",
		EmployeeID:    "3",
		ReviewPeriod:  "Q4 2024",
		OverallRating: 4.8,
		Goals: []domain.Goal{
			{ID: "1", Title: "Ship dashboard redesign", Status: domain.GoalCompleted, DueDate: "2024-02-28", Progress: 100},
			{ID: "2", Title: "Reduce bundle size by 20%", Status: domain.GoalInProgress, DueDate: "2024-05-31", Progress: 60},
		},
		Feedback:   "Strong delivery this quarter; focus next on performance work.",
		ReviewDate: "2024-01-11",
		ReviewerID: "1",
	},
	{
		ID:            "3",
		EmployeeID:    "5",
		ReviewPeriod:  "Q4 2024",
		OverallRating: 4.6,
		Goals: []domain.Goal{
			{ID: "1", Title: "Roll out onboarding checklist", Status: domain.GoalCompleted, DueDate: "2024-01-31", Progress: 100},
		},
		Feedback:   "Onboarding satisfaction scores are up across departments.",
		ReviewDate: "2024-01-10",
		ReviewerID: "2",
	},
}
