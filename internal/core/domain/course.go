package domain

import "time"

// CourseStatus represents the lifecycle state of a course submission.
type CourseStatus string

const (
	CoursePending  CourseStatus = "pending"
	CourseApproved CourseStatus = "approved"
	CourseRejected CourseStatus = "rejected"
)

// Course is an instructor's course submission awaiting admin review.
// Only admins move a course out of pending; the owning user's role is
// never affected by course decisions.
type Course struct {
	ID           string       `json:"id"`
	InstructorID string       `json:"instructor_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       CourseStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	ResolvedAt   *time.Time   `json:"resolved_at,omitempty"`
}
