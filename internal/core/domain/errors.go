package domain

import "errors"

// User and credential errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin account required")
)

// Application workflow errors.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrDuplicateApplication = errors.New("a pending application already exists")
	ErrApplicationResolved  = errors.New("application already resolved")
	ErrSubmissionInProgress = errors.New("another submission is in progress")
)

// Course workflow errors.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCourseResolved = errors.New("course already resolved")
	ErrNotInstructor  = errors.New("only instructors can perform this action")
)

var ErrInvalidTransition = errors.New("invalid role transition")
