package evidence

import "fmt"

// StorageError wraps a failure from the evidence store, tagged with the
// backend name and the operation that failed ("open", "store", "query",
// "delete", ...).
type StorageError struct {
	Backend   string
	Operation string
	Cause     error
}

func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{Backend: backend, Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// RecorderError wraps a failure while recording a decision to the
// trail. RecordID may be empty when the failure happened before an ID
// was assigned.
type RecorderError struct {
	RecordID string
	Cause    error
}

func NewRecorderError(recordID string, cause error) *RecorderError {
	return &RecorderError{RecordID: recordID, Cause: cause}
}

func (e *RecorderError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("recorder error [record_id=%s]: %v", e.RecordID, e.Cause)
	}
	return fmt.Sprintf("recorder error: %v", e.Cause)
}

func (e *RecorderError) Unwrap() error { return e.Cause }

// RetentionError wraps a failure during a pruning cycle.
type RetentionError struct {
	RetentionDays int
	Cause         error
}

func NewRetentionError(retentionDays int, cause error) *RetentionError {
	return &RetentionError{RetentionDays: retentionDays, Cause: cause}
}

func (e *RetentionError) Error() string {
	return fmt.Sprintf("retention error [retention_days=%d]: %v", e.RetentionDays, e.Cause)
}

func (e *RetentionError) Unwrap() error { return e.Cause }
