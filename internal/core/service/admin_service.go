package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type adminService struct {
	users   ports.UserRepository
	apps    ports.ApplicationRepository
	courses ports.CourseRepository
	events  ports.RoleEventRepository
	log     zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(
	users ports.UserRepository,
	apps ports.ApplicationRepository,
	courses ports.CourseRepository,
	events ports.RoleEventRepository,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{users: users, apps: apps, courses: courses, events: events, log: log}
}

// DashboardStats runs five independent counting queries. There is no shared
// snapshot, so the numbers can drift relative to each other under load.
func (s *adminService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	instructorCount, err := s.users.CountByRole(ctx, domain.RoleInstructor)
	if err != nil {
		return nil, err
	}
	pendingApps, err := s.apps.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	courseCount, err := s.courses.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingCourses, err := s.courses.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		UserCount:              userCount,
		InstructorCount:        instructorCount,
		PendingInstructorCount: pendingApps,
		CourseCount:            courseCount,
		PendingCourseCount:     pendingCourses,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *adminService) RecentRoleEvents(ctx context.Context, limit int) ([]*domain.RoleEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.events.ListRecent(ctx, limit)
}
