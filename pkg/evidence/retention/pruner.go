// Package retention enforces the evidence retention policy by deleting
// records older than the configured window, on a cron schedule.
package retention

import (
	"context"
	"log/slog"
	"time"

	"juscash/verifier/pkg/evidence"
)

// Config contains retention configuration.
type Config struct {
	// RetentionDays is how long records are kept. Zero disables pruning.
	RetentionDays int

	// PruneSchedule is a cron expression for scheduled pruning.
	// Empty disables the scheduler.
	PruneSchedule string
}

// Pruner deletes evidence records past the retention window.
type Pruner struct {
	storage evidence.Storage
	config  *Config
	logger  *slog.Logger
}

// NewPruner creates a new retention pruner.
func NewPruner(storage evidence.Storage, config *Config) *Pruner {
	return &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "evidence.retention"),
	}
}

// Prune deletes records older than the retention window and returns the
// number deleted. A zero retention period is a no-op.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	if p.config.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -p.config.RetentionDays)

	deleted, err := p.storage.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, evidence.NewRetentionError(p.config.RetentionDays, err)
	}

	if deleted > 0 {
		p.logger.Info("pruned expired evidence records",
			"deleted_count", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}

	return deleted, nil
}
