package model

import (
	"errors"
	"fmt"
)

// Sentinel errors used to classify failures.
var (
	ErrConfig       = errors.New("configuration error")
	ErrResource     = errors.New("resource error")
	ErrMalformedRow = errors.New("malformed row")
)

// ConfigError reports an invalid setting. It is raised before any rendering
// starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrConfig, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Field, e.Reason)
}

// Is matches ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// NewConfigError is shorthand for a ConfigError with a formatted reason.
func NewConfigError(field, format string, args ...interface{}) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ResourceError reports a file that could not be read or written.
type ResourceError struct {
	Op   string // "open", "read", "create", "write", ...
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrResource, e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is matches ErrResource.
func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// RowError reports an input row that cannot be rendered.
type RowError struct {
	Row    int // 1-indexed, 0 if unknown
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Row > 0 {
		return fmt.Sprintf("%v: row %d: %s", ErrMalformedRow, e.Row, msg)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedRow, msg)
}

func (e *RowError) Unwrap() error { return e.Err }

// Is matches ErrMalformedRow.
func (e *RowError) Is(target error) bool { return target == ErrMalformedRow }
