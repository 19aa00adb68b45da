package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort abstracts the application core from the concrete logger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a logger that includes the given fields in every
	// entry, used to attach context such as trace_id or component.
	WithFields(fields Fields) LoggerPort
}
