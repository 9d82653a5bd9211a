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

const applicationsCollection = "instructor_applications"

type applicationDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Intro       string             `bson:"intro"`
	Career      string             `bson:"career"`
	Certificate string             `bson:"certificate"`
	Fields      string             `bson:"fields,omitempty"`
	Motivation  string             `bson:"motivation,omitempty"`
	Contact     string             `bson:"contact,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	ResolvedAt  *time.Time         `bson:"resolved_at,omitempty"`
}

func (d applicationDocument) toDomain() *domain.InstructorApplication {
	return &domain.InstructorApplication{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Intro:       d.Intro,
		Career:      d.Career,
		Certificate: d.Certificate,
		Fields:      d.Fields,
		Motivation:  d.Motivation,
		Contact:     d.Contact,
		Status:      domain.ApplicationStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		ResolvedAt:  d.ResolvedAt,
	}
}

// ApplicationRepository persists instructor applications. Submit and Resolve
// each mutate both the application and its owning user, so the repository
// holds the database handle rather than a single collection.
type ApplicationRepository struct {
	db *mongo.Database
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// EnsureIndexes creates a partial unique index on user_id scoped to pending
// applications. The index is the authoritative guard against a user holding
// two pending applications at once; the Redis lock in front of Submit only
// narrows the window. Idempotent.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.applications().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": string(domain.ApplicationPending)}),
	})
	if err != nil {
		return fmt.Errorf("create application indexes: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) applications() *mongo.Collection {
	return r.db.Collection(applicationsCollection)
}

func (r *ApplicationRepository) users() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *ApplicationRepository) Submit(ctx context.Context, app *domain.InstructorApplication) (*domain.InstructorApplication, *domain.User, error) {
	userID, err := primitive.ObjectIDFromHex(app.UserID)
	if err != nil {
		return nil, nil, domain.ErrUserNotFound
	}

	doc := applicationDocument{
		UserID:      userID,
		Intro:       app.Intro,
		Career:      app.Career,
		Certificate: app.Certificate,
		Fields:      app.Fields,
		Motivation:  app.Motivation,
		Contact:     app.Contact,
		Status:      string(domain.ApplicationPending),
		CreatedAt:   time.Now().UTC(),
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	var (
		savedApp  *applicationDocument
		savedUser *userDocument
	)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := r.applications().InsertOne(sc, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicateApplication
			}
			return nil, fmt.Errorf("insert application: %w", err)
		}
		doc.ID = result.InsertedID.(primitive.ObjectID)
		savedApp = &doc

		update := bson.M{"$set": bson.M{
			"role":       string(domain.RolePendingInstructor),
			"updated_at": time.Now().UTC(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var user userDocument
		if err := r.users().FindOneAndUpdate(sc, bson.M{"_id": userID}, update, opts).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrUserNotFound
			}
			return nil, fmt.Errorf("promote applicant to pending: %w", err)
		}
		savedUser = &user
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return savedApp.toDomain(), savedUser.toDomain(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.InstructorApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var doc applicationDocument
	err = r.applications().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

type pendingApplicationDocument struct {
	applicationDocument `bson:",inline"`
	Applicant           userDocument `bson:"applicant"`
}

func (r *ApplicationRepository) ListPending(ctx context.Context) ([]ports.PendingApplication, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": string(domain.ApplicationPending)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "applicant",
		}}},
		{{Key: "$unwind", Value: "$applicant"}},
		{{Key: "$sort", Value: bson.M{"created_at": 1}}},
	}

	cursor, err := r.applications().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pendingApplicationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pending applications: %w", err)
	}

	pending := make([]ports.PendingApplication, 0, len(docs))
	for _, doc := range docs {
		pending = append(pending, ports.PendingApplication{
			Application:    *doc.applicationDocument.toDomain(),
			ApplicantName:  doc.Applicant.Name,
			ApplicantEmail: doc.Applicant.Email,
		})
	}
	return pending, nil
}

func (r *ApplicationRepository) Resolve(ctx context.Context, id string, status domain.ApplicationStatus, role domain.Role) (*domain.InstructorApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	var resolved *applicationDocument

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()
		update := bson.M{"$set": bson.M{
			"status":      string(status),
			"resolved_at": now,
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		filter := bson.M{"_id": oid, "status": string(domain.ApplicationPending)}

		var doc applicationDocument
		if err := r.applications().FindOneAndUpdate(sc, filter, update, opts).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, r.resolveMissError(sc, oid)
			}
			return nil, fmt.Errorf("resolve application: %w", err)
		}
		resolved = &doc

		userUpdate := bson.M{"$set": bson.M{
			"role":       string(role),
			"updated_at": now,
		}}
		if _, err := r.users().UpdateOne(sc, bson.M{"_id": doc.UserID}, userUpdate); err != nil {
			return nil, fmt.Errorf("update applicant role: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return resolved.toDomain(), nil
}

// resolveMissError tells a missing application apart from one that was already
// decided, so an admin double-click surfaces a conflict instead of a 404.
func (r *ApplicationRepository) resolveMissError(ctx context.Context, id primitive.ObjectID) error {
	err := r.applications().FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrApplicationNotFound
		}
		return fmt.Errorf("inspect application: %w", err)
	}
	return domain.ErrApplicationResolved
}

func (r *ApplicationRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.applications().CountDocuments(ctx, bson.M{"status": string(domain.ApplicationPending)})
	if err != nil {
		return 0, fmt.Errorf("count pending applications: %w", err)
	}
	return count, nil
}
