package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// PendingCourse is a course joined with its instructor for admin review.
type PendingCourse struct {
	Course          domain.Course `json:"course"`
	InstructorName  string        `json:"instructor_name"`
	InstructorEmail string        `json:"instructor_email"`
}

// CourseRepository defines persistence operations for course submissions.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// ListPending returns all pending courses joined with instructor name
	// and email, oldest first.
	ListPending(ctx context.Context) ([]PendingCourse, error)
	// UpdateStatus resolves a pending course. Returns
	// domain.ErrCourseNotFound when the id does not resolve and
	// domain.ErrCourseResolved when the course is no longer pending.
	UpdateStatus(ctx context.Context, id string, status domain.CourseStatus) (*domain.Course, error)
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}
