// Package recorder buffers completed verifications and writes them to
// evidence storage asynchronously, off the request path.
package recorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"juscash/verifier/pkg/evidence"
	"juscash/verifier/pkg/schema"
)

// Config contains configuration for the evidence recorder.
type Config struct {
	// AsyncBuffer is the size of the async write channel buffer.
	// Default: 1000
	AsyncBuffer int

	// WriteTimeout bounds a single storage write.
	// Default: 5 seconds
	WriteTimeout time.Duration
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		AsyncBuffer:  1000,
		WriteTimeout: 5 * time.Second,
	}
}

// Recorder records verification outcomes asynchronously. A full buffer
// drops the record rather than blocking the request that produced it.
type Recorder struct {
	storage    evidence.Storage
	config     *Config
	recordChan chan *evidence.Record
	wg         sync.WaitGroup
	done       chan struct{}
	closeOnce  sync.Once
	logger     *slog.Logger
}

// NewRecorder creates a recorder and starts its background worker.
func NewRecorder(storage evidence.Storage, config *Config) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}

	r := &Recorder{
		storage:    storage,
		config:     config,
		recordChan: make(chan *evidence.Record, config.AsyncBuffer),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "evidence.recorder"),
	}

	r.wg.Add(1)
	go r.worker()

	r.logger.Info("evidence recorder initialized",
		"async_buffer", config.AsyncBuffer,
		"write_timeout", config.WriteTimeout,
	)

	return r
}

// Record enqueues a completed verification for persistence. It returns
// immediately; storage failures are logged, never surfaced to the caller.
func (r *Recorder) Record(ctx context.Context, requestID string, record *schema.ProcessRecord, decision *schema.Decision, outcome string, latency time.Duration) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		r.logger.Error("failed to serialize process record", "error", err)
		return
	}

	rec := &evidence.Record{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		ProcessNumber: record.ProcessNumber,
		RecordJSON:    string(recordJSON),
		Outcome:       outcome,
		LatencyMS:     latency.Milliseconds(),
		RecordedAt:    time.Now().UTC(),
	}

	if decision != nil {
		citations, err := json.Marshal(decision.Citations)
		if err != nil {
			r.logger.Error("failed to serialize citations", "record_id", rec.ID, "error", err)
		} else {
			rec.CitationsJSON = string(citations)
		}
		rec.Decision = string(decision.Decision)
		rec.Rationale = decision.Rationale
	}

	select {
	case r.recordChan <- rec:
	case <-r.done:
		r.logger.Warn("recorder shutting down, dropping record",
			"record_id", rec.ID,
			"request_id", rec.RequestID,
		)
	default:
		r.logger.Error("evidence record channel full, dropping record",
			"record_id", rec.ID,
			"request_id", rec.RequestID,
			"channel_capacity", r.config.AsyncBuffer,
		)
	}
}

// Close drains the channel and waits for pending writes to complete.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		r.logger.Info("shutting down evidence recorder")
		close(r.done)
		r.wg.Wait()
		r.logger.Info("evidence recorder shut down complete")
	})
	return nil
}

// worker drains the record channel and writes to storage.
func (r *Recorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case rec := <-r.recordChan:
			r.writeRecord(rec)
		case <-r.done:
			// Drain remaining records before exiting.
			for {
				select {
				case rec := <-r.recordChan:
					r.writeRecord(rec)
				default:
					return
				}
			}
		}
	}
}

// writeRecord persists one record with a bounded timeout.
func (r *Recorder) writeRecord(rec *evidence.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	if err := r.storage.Store(ctx, rec); err != nil {
		r.logger.Error("failed to write evidence record",
			"record_id", rec.ID,
			"request_id", rec.RequestID,
			"error", err,
		)
		return
	}

	r.logger.Debug("evidence record written",
		"record_id", rec.ID,
		"request_id", rec.RequestID,
		"outcome", rec.Outcome,
	)
}
