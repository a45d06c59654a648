//go:build integration

// Package testutil starts the MongoDB server used by integration tests.
//
// Tests run against a mongo testcontainer. Setting MONGODB_TEST_URI points
// them at an existing server instead, which is how CI runs them next to a
// service container.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	mongoImage = "mongo:7.0"
	// URIEnv overrides the container with an existing server.
	URIEnv = "MONGODB_TEST_URI"
	// maxDBNameLen is MongoDB's limit on database names, in bytes.
	maxDBNameLen = 63
)

// MongoServer is a MongoDB server reachable at URI. Container is nil when the
// server comes from URIEnv.
type MongoServer struct {
	URI       string
	Container testcontainers.Container
}

// SetupMongoDB starts a dedicated server. Prefer the shared server from
// SetupTestMainWithMongoDB unless the test needs to stop it.
func SetupMongoDB(ctx context.Context) (*MongoServer, error) {
	if uri := os.Getenv(URIEnv); uri != "" {
		return &MongoServer{URI: uri}, nil
	}

	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongo container: %w", err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongo connection string: %w", err)
	}
	return &MongoServer{URI: uri, Container: container}, nil
}

// Cleanup terminates the container, if there is one.
func (s *MongoServer) Cleanup(ctx context.Context) error {
	if s == nil || s.Container == nil {
		return nil
	}
	if err := s.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongo container: %w", err)
	}
	return nil
}

var (
	shared   *MongoServer
	sharedMu sync.RWMutex
	dbSeq    atomic.Uint64
)

// SetupTestMainWithMongoDB runs the package tests against one shared server:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	server, err := SetupMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
		return 1
	}

	sharedMu.Lock()
	shared = server
	sharedMu.Unlock()

	code := m.Run()

	if err := server.Cleanup(ctx); err != nil {
		// Ryuk removes the container anyway.
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared server. It panics
// outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared MongoDB not started; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a database name that is valid and
// unique within the test binary.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, testName)

	suffix := fmt.Sprintf("_%d", dbSeq.Add(1))
	if len(name)+len(suffix) > maxDBNameLen {
		name = name[:maxDBNameLen-len(suffix)]
	}
	return name + suffix
}
