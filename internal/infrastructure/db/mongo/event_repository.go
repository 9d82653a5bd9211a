package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

const roleEventsCollection = "role_events"

type roleEventDocument struct {
	UserID    string    `bson:"user_id"`
	Event     string    `bson:"event"`
	FromRole  string    `bson:"from_role"`
	ToRole    string    `bson:"to_role"`
	Actor     string    `bson:"actor"`
	Timestamp time.Time `bson:"timestamp"`
}

// RoleEventRepository persists the append-only role transition audit trail.
type RoleEventRepository struct {
	coll *mongo.Collection
}

func NewRoleEventRepository(db *mongo.Database) *RoleEventRepository {
	return &RoleEventRepository{coll: db.Collection(roleEventsCollection)}
}

func (r *RoleEventRepository) Insert(ctx context.Context, event *domain.RoleEvent) error {
	doc := roleEventDocument{
		UserID:    event.UserID,
		Event:     event.Event,
		FromRole:  string(event.FromRole),
		ToRole:    string(event.ToRole),
		Actor:     event.Actor,
		Timestamp: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert role event: %w", err)
	}
	return nil
}

func (r *RoleEventRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RoleEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list role events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []roleEventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode role events: %w", err)
	}

	events := make([]*domain.RoleEvent, 0, len(docs))
	for _, doc := range docs {
		events = append(events, &domain.RoleEvent{
			UserID:    doc.UserID,
			Event:     doc.Event,
			FromRole:  domain.Role(doc.FromRole),
			ToRole:    domain.Role(doc.ToRole),
			Actor:     doc.Actor,
			Timestamp: doc.Timestamp,
		})
	}
	return events, nil
}
