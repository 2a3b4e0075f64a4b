// Package logging decouples the application from a concrete logging
// framework. Collaborator packages (store, auth, menu, transfer) log through
// the Logger interface; the domain services stay silent and surface errors
// instead.
package logging

// Logger is the structured logging interface used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names for structured logging.
const (
	FieldUser      = "user"
	FieldCategory  = "category"
	FieldOperation = "operation_id"
	FieldFacet     = "facet"
	FieldFile      = "file_path"
	FieldAmount    = "amount"
	FieldError     = "error"
	FieldCount     = "count"
)
