package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
	ErrInvalidDate    = errors.New("invalid date format")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

// Identity errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPersonNotFound     = errors.New("person not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrOwnRoleChange      = errors.New("cannot change your own role")
)

// Loan workflow errors
var (
	ErrLoanNotFound      = errors.New("loan not found")
	ErrSelfDealing       = errors.New("cannot approve or reject your own loan")
	ErrInvalidTransition = errors.New("loan is not pending")
)

// Record-keeping errors
var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
)
