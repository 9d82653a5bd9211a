package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// DashboardStats are the admin dashboard counters. The five numbers are
// independent reads with no shared snapshot; under concurrent writes they
// may be mutually inconsistent.
type DashboardStats struct {
	UserCount              int64 `json:"userCount"`
	InstructorCount        int64 `json:"instructorCount"`
	PendingInstructorCount int64 `json:"pendingInstructorCount"`
	CourseCount            int64 `json:"courseCount"`
	PendingCourseCount     int64 `json:"pendingCourseCount"`
}

// AdminService provides read-only admin views.
type AdminService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	RecentRoleEvents(ctx context.Context, limit int) ([]*domain.RoleEvent, error)
}
