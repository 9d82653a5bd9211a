package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// ApplyInput carries an instructor application submission.
type ApplyInput struct {
	UserID      string
	Intro       string
	Career      string
	Certificate string
	Fields      string
	Motivation  string
	Contact     string
}

// ApplyResult is returned after a successful submission: the created
// application and the user with their updated role.
type ApplyResult struct {
	Application *domain.InstructorApplication
	User        *domain.User
}

// InstructorService governs the instructor application workflow and the
// role transitions it drives.
type InstructorService interface {
	// Apply submits an application and moves the caller to
	// pending_instructor. At most one pending application per user.
	Apply(ctx context.Context, input ApplyInput) (*ApplyResult, error)
	// ListPending returns all pending applications for admin review.
	ListPending(ctx context.Context) ([]PendingApplication, error)
	// Approve resolves the application and promotes the applicant to instructor.
	Approve(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error)
	// Reject resolves the application and returns the applicant to student,
	// re-opening resubmission.
	Reject(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error)
	// ToggleActiveRole flips the caller's student/instructor view.
	// Only approved instructors may toggle.
	ToggleActiveRole(ctx context.Context, userID string) (*domain.User, error)
}
