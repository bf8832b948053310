// Package result persists analysis artifacts (final results, per-batch raw
// responses) keyed by run ID. Backends: in-memory, postgres, S3-compatible
// object storage.
package result

import (
	"context"
	"errors"
	"os"
	"strings"
)

// Store defines operations for persisting analysis run artifacts.
type Store interface {
	Put(ctx context.Context, runID, path string, content []byte) error
	Get(ctx context.Context, runID, path string) ([]byte, error)
	List(ctx context.Context, runID string) ([]string, error)
}

var ErrNotFound = errors.New("result: artifact not found")

// NewFromEnv picks a backend from the environment: RESULT_STORE_PG_DSN
// selects postgres, RESULT_S3_ENDPOINT selects object storage, otherwise
// an in-memory store is returned. Backend construction errors fall back to
// memory so a missing database never blocks an analysis run.
func NewFromEnv() Store {
	if dsn := strings.TrimSpace(os.Getenv("RESULT_STORE_PG_DSN")); dsn != "" {
		if s, err := NewPostgresStore(dsn); err == nil {
			return s
		}
	}
	if endpoint := strings.TrimSpace(os.Getenv("RESULT_S3_ENDPOINT")); endpoint != "" {
		s, err := NewS3Store(S3Config{
			Endpoint:  endpoint,
			Region:    os.Getenv("RESULT_S3_REGION"),
			AccessKey: os.Getenv("RESULT_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("RESULT_S3_SECRET_KEY"),
			Bucket:    os.Getenv("RESULT_S3_BUCKET"),
			UseSSL:    strings.EqualFold(os.Getenv("RESULT_S3_USE_SSL"), "true"),
		})
		if err == nil {
			return s
		}
	}
	return NewMemoryStore()
}
