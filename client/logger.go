package client

// Logger receives non-fatal warnings from the pipeline. Callers that do
// not supply one get a silent default.
type Logger interface {
	// Warnf logs a formatted warning.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
