package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// SubmitCourseInput carries a course submission from an instructor.
type SubmitCourseInput struct {
	InstructorID string
	Title        string
	Description  string
}

// CourseService governs the course approval pipeline.
type CourseService interface {
	// Submit creates a pending course. The caller's role is checked against
	// the user store, not the token, so a stale token cannot bypass the gate.
	Submit(ctx context.Context, input SubmitCourseInput) (*domain.Course, error)
	ListPending(ctx context.Context) ([]PendingCourse, error)
	Approve(ctx context.Context, courseID string) (*domain.Course, error)
	Reject(ctx context.Context, courseID string) (*domain.Course, error)
}
