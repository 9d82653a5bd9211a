package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// RoleEventRepository persists the role transition audit trail.
type RoleEventRepository interface {
	Insert(ctx context.Context, event *domain.RoleEvent) error
	// ListRecent returns the newest events first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.RoleEvent, error)
}
