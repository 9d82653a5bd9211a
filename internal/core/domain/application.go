package domain

import "time"

// ApplicationStatus represents the lifecycle state of an instructor application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Resolved reports whether the application has been decided by an admin.
// Resolved applications are immutable.
func (s ApplicationStatus) Resolved() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// InstructorApplication is a student's request to be promoted to instructor.
// A user has at most one pending application at a time.
type InstructorApplication struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Intro       string            `json:"intro"`
	Career      string            `json:"career"`
	Certificate string            `json:"certificate"`
	Fields      string            `json:"fields,omitempty"`
	Motivation  string            `json:"motivation,omitempty"`
	Contact     string            `json:"contact,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
}
