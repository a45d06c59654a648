//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, LoadPlansCollection, db.LoadPlans.Name())
		assert.Equal(t, LogsCollection, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("lookup indexes exist", func(t *testing.T) {
		names := indexNames(t, ctx, db.LoadPlans.Name(), db)
		assert.Contains(t, names, "fingerprint_1")
		assert.Contains(t, names, "request_id_1")

		names = indexNames(t, ctx, db.Logs.Name(), db)
		assert.Contains(t, names, "action_type_1_timestamp_-1")
		assert.Contains(t, names, "subject_1_timestamp_-1")
	})

	t.Run("TTL can be replaced", func(t *testing.T) {
		require.NoError(t, db.SetPlansTTL(ctx, 48*time.Hour))
		require.NoError(t, db.SetPlansTTL(ctx, 24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

		spec := indexSpec(t, ctx, db, LoadPlansCollection, "created_at_1")
		assert.EqualValues(t, 24*60*60, spec["expireAfterSeconds"])
	})

	t.Run("TTL below one second is rejected", func(t *testing.T) {
		assert.Error(t, db.SetLogsTTL(ctx, time.Millisecond))
	})
}

func indexNames(t *testing.T, ctx context.Context, collection string, db *MongoDB) []string {
	t.Helper()
	cursor, err := db.Database.Collection(collection).Indexes().List(ctx)
	require.NoError(t, err)
	var specs []bson.M
	require.NoError(t, cursor.All(ctx, &specs))

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		if name, ok := s["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

func indexSpec(t *testing.T, ctx context.Context, db *MongoDB, collection, name string) bson.M {
	t.Helper()
	cursor, err := db.Database.Collection(collection).Indexes().List(ctx)
	require.NoError(t, err)
	var specs []bson.M
	require.NoError(t, cursor.All(ctx, &specs))
	for _, s := range specs {
		if s["name"] == name {
			return s
		}
	}
	t.Fatalf("index %s not found on %s", name, collection)
	return nil
}
