package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPlanNotFound is returned when no stored plan has the requested id.
var ErrPlanNotFound = errors.New("load plan not found")

// MaxListLimit caps the number of plans returned by List.
const MaxListLimit = 100

// LoadPlansRepository stores computed load plans.
type LoadPlansRepository struct {
	collection *mongo.Collection
}

// NewLoadPlansRepository creates a new load plans repository.
func NewLoadPlansRepository(db *MongoDB) *LoadPlansRepository {
	return &LoadPlansRepository{collection: db.LoadPlans}
}

// Create inserts plan, assigning an id and creation time when missing.
func (r *LoadPlansRepository) Create(ctx context.Context, plan *model.StoredPlan) error {
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindByID returns the plan with the given id or ErrPlanNotFound.
func (r *LoadPlansRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.StoredPlan, error) {
	var plan model.StoredPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List returns the most recent plans, newest first. limit is clamped to
// [1, MaxListLimit].
func (r *LoadPlansRepository) List(ctx context.Context, limit int) ([]model.StoredPlan, error) {
	limit = min(max(limit, 1), MaxListLimit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	plans := make([]model.StoredPlan, 0, limit)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Count returns the number of stored plans.
func (r *LoadPlansRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
