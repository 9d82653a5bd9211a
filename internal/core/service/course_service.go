package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

type courseService struct {
	users   ports.UserRepository
	courses ports.CourseRepository
	log     zerolog.Logger
}

// NewCourseService returns a CourseService implementation.
func NewCourseService(users ports.UserRepository, courses ports.CourseRepository, log zerolog.Logger) ports.CourseService {
	return &courseService{users: users, courses: courses, log: log}
}

// Submit creates a pending course. The instructor gate reads the user store
// rather than trusting the token's role claim.
func (s *courseService) Submit(ctx context.Context, in ports.SubmitCourseInput) (*domain.Course, error) {
	user, err := s.users.FindByID(ctx, in.InstructorID)
	if err != nil {
		return nil, err
	}
	if !user.IsInstructor() {
		return nil, domain.ErrNotInstructor
	}

	course := &domain.Course{
		InstructorID: in.InstructorID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       domain.CoursePending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Str("instructor_id", in.InstructorID).Msg("failed to create course")
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("instructor_id", in.InstructorID).Msg("course submitted")
	return created, nil
}

func (s *courseService) ListPending(ctx context.Context) ([]ports.PendingCourse, error) {
	return s.courses.ListPending(ctx)
}

func (s *courseService) Approve(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.resolve(ctx, courseID, domain.CourseApproved)
}

func (s *courseService) Reject(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.resolve(ctx, courseID, domain.CourseRejected)
}

// resolve moves a pending course to its final status. Course decisions never
// touch the owning user's role.
func (s *courseService) resolve(ctx context.Context, courseID string, status domain.CourseStatus) (*domain.Course, error) {
	course, err := s.courses.UpdateStatus(ctx, courseID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", courseID).Str("status", string(status)).Msg("course resolved")
	return course, nil
}
