package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserExists         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountLocked      = errors.New("account temporarily locked after repeated failures")
	ErrInvalidPlanInput   = errors.New("a plan needs a title and at least one goal")
	// ErrPlanNotFound covers both a missing plan and a plan owned by another
	// user; callers cannot tell the two apart.
	ErrPlanNotFound = errors.New("study plan not found")
	ErrTaskNotFound = errors.New("task not found in this plan")
)
