package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrPersistence  = errors.New("persistence error")
	ErrNotification = errors.New("notification error")
	ErrNoProvider   = errors.New("no AI provider available")
)

// APIError wraps a transport-level failure from an external source: a non-2xx
// response or a network error. Never retried, surfaced as-is.
type APIError struct {
	Source  string // adapter name, e.g. "reddit"
	Status  int    // HTTP status, 0 for network failures
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Source, e.Status, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Source, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// ValidationError carries the structured list of constraints an AutoContent
// record failed. The orchestrator catches it per-item and drops only the
// offending item.
type ValidationError struct {
	ContentID string
	Failures  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content %s failed validation: %s", e.ContentID, strings.Join(e.Failures, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ContentProcessingError wraps any pipeline failure for top-level reporting.
type ContentProcessingError struct {
	Stage string // "fetching", "analyzing", "generating", "persisting"
	Err   error
}

func (e *ContentProcessingError) Error() string {
	return fmt.Sprintf("content processing failed during %s: %v", e.Stage, e.Err)
}

func (e *ContentProcessingError) Unwrap() error { return e.Err }
