package predictions

import (
	"errors"
	"fmt"
)

// Load failure causes
var (
	ErrSourceMissing   = errors.New("source file not found")
	ErrMalformedSource = errors.New("malformed source")
	ErrSchema          = errors.New("schema mismatch")
)

// ErrUnknownFilterValue marks a selection value that is not one of the
// derived options. Filtering never fails on it; the value simply matches
// no rows.
var ErrUnknownFilterValue = errors.New("unknown filter value")

// DataLoadError is returned when a source cannot be read or does not meet
// the schema expectations. It is fatal at startup; there is no partial load.
type DataLoadError struct {
	Source string
	Path   string
	Sheet  string
	Err    error
}

// Error implements the error interface
func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("load %s", e.Source)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Sheet != "" {
		msg += fmt.Sprintf(" sheet %q", e.Sheet)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap allows errors.Is against the sentinel causes
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// IsDataLoadError reports whether err carries a DataLoadError.
func IsDataLoadError(err error) bool {
	var dle *DataLoadError
	return errors.As(err, &dle)
}

func schemaError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...))
}
