package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate directory accounts from the response.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTooManyAttempts is returned before credentials are even checked once
	// the rate-limit window for an email is exhausted.
	ErrTooManyAttempts = errors.New("too many login attempts")

	ErrUnknownRole = errors.New("unknown role")
	ErrForbidden   = errors.New("access forbidden")

	// ErrUserNotFound covers directory lookups by ID, where account
	// enumeration is not a concern: the caller is already authenticated.
	ErrUserNotFound = errors.New("user not found")

	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeExists       = errors.New("employee already exists")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveNotPending      = errors.New("leave request already decided")
	ErrReviewNotFound       = errors.New("performance review not found")
	ErrPayrollNotFound      = errors.New("payroll summary not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")

	ErrInvalidInput = errors.New("invalid input")
)
