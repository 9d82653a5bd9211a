package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// PendingApplication is an application joined with its applicant for admin review.
type PendingApplication struct {
	Application    domain.InstructorApplication `json:"application"`
	ApplicantName  string                       `json:"applicant_name"`
	ApplicantEmail string                       `json:"applicant_email"`
}

// ApplicationRepository handles instructor application persistence.
//
// Submit and Resolve each touch two documents (the application and its owning
// user) and are required to be atomic, so the mutation is a single repository
// operation rather than two separate writes orchestrated by the service.
type ApplicationRepository interface {
	// Submit inserts the application and moves the owning user to
	// pending_instructor in one transaction. Returns
	// domain.ErrDuplicateApplication when the user already has a pending
	// application.
	Submit(ctx context.Context, app *domain.InstructorApplication) (*domain.InstructorApplication, *domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.InstructorApplication, error)

	// ListPending returns all pending applications joined with applicant
	// name and email, oldest first.
	ListPending(ctx context.Context) ([]PendingApplication, error)

	// Resolve sets the application status and the owning user's role in one
	// transaction. Returns domain.ErrApplicationNotFound when the id does
	// not resolve and domain.ErrApplicationResolved when the application is
	// no longer pending.
	Resolve(ctx context.Context, id string, status domain.ApplicationStatus, role domain.Role) (*domain.InstructorApplication, error)

	CountPending(ctx context.Context) (int64, error)
}
