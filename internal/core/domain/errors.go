package domain

import "errors"

// Validation failures. The input is rejected and left for the caller to fix.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrEmptyDriverName    = errors.New("driver name cannot be empty")
	ErrDuplicateDriver    = errors.New("driver already exists")
	ErrUnknownField       = errors.New("unknown form field")
)

// Authentication and authorization failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("you are not logged in")
	ErrForbidden          = errors.New("access forbidden")
)

var (
	ErrUserExists          = errors.New("this username is already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrRowNotFound         = errors.New("form row not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrSubmitInProgress    = errors.New("a submission is already in progress")
	ErrDuplicateSubmission = errors.New("submission already received")
)
