package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

const coursesCollection = "courses"

type courseDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	InstructorID primitive.ObjectID `bson:"instructor_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	ResolvedAt   *time.Time         `bson:"resolved_at,omitempty"`
}

func (d courseDocument) toDomain() *domain.Course {
	return &domain.Course{
		ID:           d.ID.Hex(),
		InstructorID: d.InstructorID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Status:       domain.CourseStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		ResolvedAt:   d.ResolvedAt,
	}
}

// CourseRepository persists course submissions in the "courses" collection.
type CourseRepository struct {
	db *mongo.Database
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{db: db}
}

// EnsureIndexes creates the instructor and status lookup indexes. Idempotent.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.courses().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "instructor_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create course indexes: %w", err)
	}
	return nil
}

func (r *CourseRepository) courses() *mongo.Collection {
	return r.db.Collection(coursesCollection)
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	instructorID, err := primitive.ObjectIDFromHex(course.InstructorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := courseDocument{
		InstructorID: instructorID,
		Title:        course.Title,
		Description:  course.Description,
		Status:       string(domain.CoursePending),
		CreatedAt:    time.Now().UTC(),
	}

	result, err := r.courses().InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	var doc courseDocument
	err = r.courses().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return doc.toDomain(), nil
}

type pendingCourseDocument struct {
	courseDocument `bson:",inline"`
	Instructor     userDocument `bson:"instructor"`
}

func (r *CourseRepository) ListPending(ctx context.Context) ([]ports.PendingCourse, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": string(domain.CoursePending)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "instructor_id",
			"foreignField": "_id",
			"as":           "instructor",
		}}},
		{{Key: "$unwind", Value: "$instructor"}},
		{{Key: "$sort", Value: bson.M{"created_at": 1}}},
	}

	cursor, err := r.courses().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list pending courses: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pendingCourseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pending courses: %w", err)
	}

	pending := make([]ports.PendingCourse, 0, len(docs))
	for _, doc := range docs {
		pending = append(pending, ports.PendingCourse{
			Course:          *doc.courseDocument.toDomain(),
			InstructorName:  doc.Instructor.Name,
			InstructorEmail: doc.Instructor.Email,
		})
	}
	return pending, nil
}

func (r *CourseRepository) UpdateStatus(ctx context.Context, id string, status domain.CourseStatus) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(status),
		"resolved_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": oid, "status": string(domain.CoursePending)}

	var doc courseDocument
	err = r.courses().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.updateMissError(ctx, oid)
		}
		return nil, fmt.Errorf("update course status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CourseRepository) updateMissError(ctx context.Context, id primitive.ObjectID) error {
	err := r.courses().FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("inspect course: %w", err)
	}
	return domain.ErrCourseResolved
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.courses().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}

func (r *CourseRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.courses().CountDocuments(ctx, bson.M{"status": string(domain.CoursePending)})
	if err != nil {
		return 0, fmt.Errorf("count pending courses: %w", err)
	}
	return count, nil
}
