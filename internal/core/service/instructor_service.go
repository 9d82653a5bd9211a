package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

// SubmitLocker serializes concurrent application submissions per user (Redis).
// The partial unique index on pending applications is the hard guarantee; the
// lock keeps concurrent submitters from racing to the insert at all.
type SubmitLocker interface {
	Acquire(ctx context.Context, userID string) (bool, error)
	Release(ctx context.Context, userID string) error
}

// AuditSink receives role events for asynchronous persistence.
type AuditSink interface {
	Record(event domain.RoleEvent)
}

type instructorService struct {
	users ports.UserRepository
	apps  ports.ApplicationRepository
	lock  SubmitLocker
	audit AuditSink
	log   zerolog.Logger
}

// NewInstructorService returns an InstructorService implementation.
func NewInstructorService(
	users ports.UserRepository,
	apps ports.ApplicationRepository,
	lock SubmitLocker,
	audit AuditSink,
	log zerolog.Logger,
) ports.InstructorService {
	return &instructorService{users: users, apps: apps, lock: lock, audit: audit, log: log}
}

// Apply submits an instructor application and moves the caller from student to
// pending_instructor. Both writes happen inside one repository transaction.
func (s *instructorService) Apply(ctx context.Context, in ports.ApplyInput) (*ports.ApplyResult, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if user.Role == domain.RolePendingInstructor {
		return nil, domain.ErrDuplicateApplication
	}
	if !user.Role.CanTransitionTo(domain.RolePendingInstructor) {
		return nil, domain.ErrInvalidTransition
	}

	// Serialize per-user submissions before touching the database.
	acquired, err := s.lock.Acquire(ctx, in.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("submit lock unavailable, relying on unique index")
	} else if !acquired {
		return nil, domain.ErrSubmissionInProgress
	} else {
		defer func() {
			if err := s.lock.Release(ctx, in.UserID); err != nil {
				s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("failed to release submit lock")
			}
		}()
	}

	app := &domain.InstructorApplication{
		UserID:      in.UserID,
		Intro:       in.Intro,
		Career:      in.Career,
		Certificate: in.Certificate,
		Fields:      in.Fields,
		Motivation:  in.Motivation,
		Contact:     in.Contact,
		Status:      domain.ApplicationPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, updatedUser, err := s.apps.Submit(ctx, app)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.RoleEvent{
		UserID:    in.UserID,
		Event:     domain.EventApplicationSubmitted,
		FromRole:  domain.RoleStudent,
		ToRole:    domain.RolePendingInstructor,
		Actor:     "self",
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("user_id", in.UserID).Str("application_id", created.ID).Msg("instructor application submitted")

	return &ports.ApplyResult{Application: created, User: updatedUser}, nil
}

func (s *instructorService) ListPending(ctx context.Context) ([]ports.PendingApplication, error) {
	return s.apps.ListPending(ctx)
}

// Approve promotes the applicant to instructor. Application status and user
// role change together or not at all.
func (s *instructorService) Approve(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
	app, err := s.apps.Resolve(ctx, applicationID, domain.ApplicationApproved, domain.RoleInstructor)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.RoleEvent{
		UserID:    app.UserID,
		Event:     domain.EventApplicationApproved,
		FromRole:  domain.RolePendingInstructor,
		ToRole:    domain.RoleInstructor,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("application_id", applicationID).Str("user_id", app.UserID).Msg("instructor application approved")
	return app, nil
}

// Reject returns the applicant to student so they can reapply.
func (s *instructorService) Reject(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
	app, err := s.apps.Resolve(ctx, applicationID, domain.ApplicationRejected, domain.RoleStudent)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.RoleEvent{
		UserID:    app.UserID,
		Event:     domain.EventApplicationRejected,
		FromRole:  domain.RolePendingInstructor,
		ToRole:    domain.RoleStudent,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("application_id", applicationID).Str("user_id", app.UserID).Msg("instructor application rejected")
	return app, nil
}

// ToggleActiveRole flips the caller's view between student and instructor.
func (s *instructorService) ToggleActiveRole(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsInstructor() {
		return nil, domain.ErrNotInstructor
	}

	updated, err := s.users.UpdateActiveRole(ctx, userID, user.ToggledActiveRole())
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.RoleEvent{
		UserID:    userID,
		Event:     domain.EventActiveRoleToggled,
		FromRole:  user.ActiveRole,
		ToRole:    updated.ActiveRole,
		Actor:     "self",
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}
