package summary

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert writes the full record, creating or overwriting the row at its key.
	Upsert(ctx context.Context, rec Record) error
	// UpdateStatus overwrites only status and updated_at of an existing record.
	UpdateStatus(ctx context.Context, key Key, status Status, updatedAt time.Time) error
	// UpdateActivity overwrites status, reviewers, commit messages and
	// updated_at of an existing record, leaving the summary fields untouched.
	UpdateActivity(ctx context.Context, key Key, status Status, reviewers, commitMessages []string, updatedAt time.Time) error
	GetByKey(ctx context.Context, key Key) (Record, error)
}
