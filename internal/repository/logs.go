package repository

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository stores the audit trail in the logs collection.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Insert writes entries. Several entries go in one unordered bulk write, so
// one rejected document does not stop the rest. Entries must be stamped.
func (r *LogsRepository) Insert(ctx context.Context, entries []*model.LogEntry) error {
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			docs = append(docs, e)
		}
	}

	switch len(docs) {
	case 0:
		return nil
	case 1:
		_, err := r.collection.InsertOne(ctx, docs[0])
		return err
	default:
		_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
		return err
	}
}

// Find returns the entries matching q, newest first. A zero Limit means no
// limit; callers are expected to pass a normalized query.
func (r *LogsRepository) Find(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(q.Limit)).
		SetSkip(int64(q.Skip))

	cursor, err := r.collection.Find(ctx, logFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.LogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching q. Paging is ignored.
func (r *LogsRepository) Count(ctx context.Context, q model.LogQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(q))
}

func logFilter(q model.LogQuery) bson.D {
	filter := bson.D{}
	for _, f := range []struct {
		key   string
		value string
	}{
		{"request_id", q.RequestID},
		{"subject", q.Subject},
		{"level", q.Level},
		{"action_type", q.ActionType},
		{"path", q.Path},
	} {
		if f.value != "" {
			filter = append(filter, bson.E{Key: f.key, Value: f.value})
		}
	}

	window := bson.D{}
	if q.Since != nil {
		window = append(window, bson.E{Key: "$gte", Value: q.Since.UTC()})
	}
	if q.Until != nil {
		window = append(window, bson.E{Key: "$lt", Value: q.Until.UTC()})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	return filter
}
