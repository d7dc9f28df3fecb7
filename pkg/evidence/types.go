// Package evidence defines the decision audit trail: each completed
// verification can be persisted as an immutable record for later review.
// Recording is optional, asynchronous, and never on the request path.
package evidence

import (
	"context"
	"time"
)

// Record is one persisted verification outcome.
type Record struct {
	// ID is a unique identifier for this record (UUID).
	ID string

	// RequestID correlates the record with server logs.
	RequestID string

	// ProcessNumber is the judicial process identifier that was verified.
	ProcessNumber string

	// RecordJSON is the full input record as submitted, serialized as JSON.
	RecordJSON string

	// Decision is the returned decision kind, empty when evaluation failed.
	Decision string

	// Rationale is the returned rationale, empty when evaluation failed.
	Rationale string

	// CitationsJSON is the cited rule IDs as a JSON array.
	CitationsJSON string

	// Outcome labels how the request ended (success or a failure kind).
	Outcome string

	// LatencyMS is the end-to-end request latency in milliseconds.
	LatencyMS int64

	// RecordedAt is when the record was created.
	RecordedAt time.Time
}

// Storage persists evidence records.
type Storage interface {
	// Store persists a record.
	Store(ctx context.Context, record *Record) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]*Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteOlderThan removes records recorded before the cutoff and
	// returns the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases storage resources.
	Close() error
}
