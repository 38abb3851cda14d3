package service

import (
	"context"

	"github.com/qubitara/hr-console/internal/core/domain"
	"github.com/qubitara/hr-console/internal/core/ports"
)

// lateThreshold is the clock-in time after which a day counts as late.
const lateThreshold = "09:00"

// AttendanceService implements the daily clock sheet.
type AttendanceService struct {
	repo      ports.AttendanceRepository
	employees ports.EmployeeRepository
}

func NewAttendanceService(repo ports.AttendanceRepository, employees ports.EmployeeRepository) *AttendanceService {
	return &AttendanceService{repo: repo, employees: employees}
}

func (s *AttendanceService) List(ctx context.Context, filter ports.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	return s.repo.List(ctx, filter)
}

// CheckIn opens a record for the day. Lexical comparison works for HH:MM.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID, date, timeIn, notes string) (*domain.AttendanceRecord, error) {
	if employeeID == "" || date == "" || timeIn == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	status := domain.AttendancePresent
	if timeIn > lateThreshold {
		status = domain.AttendanceLate
	}
	return s.repo.Create(ctx, &domain.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
		TimeIn:     timeIn,
		Status:     status,
		Notes:      notes,
	})
}

// CheckOut closes the open record for the day.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID, date, timeOut string) (*domain.AttendanceRecord, error) {
	record, err := s.repo.FindOpen(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	record.TimeOut = timeOut
	return s.repo.Update(ctx, record)
}

func (s *AttendanceService) Update(ctx context.Context, id string, status, notes string) (*domain.AttendanceRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if status != "" {
		switch status {
		case domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceLate, domain.AttendanceHalfDay:
			record.Status = status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if notes != "" {
		record.Notes = notes
	}
	return s.repo.Update(ctx, record)
}
