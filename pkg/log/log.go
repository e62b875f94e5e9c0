// Package log is the service-wide leveled logger. Every method takes the
// request context so request-scoped fields end up on the line.
package log

import "context"

// Logger is implemented by the zap logger returned from Init.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures Init.
type ZapConfig struct {
	Level        string
	Mode         string // "debug"/"development" or "production"
	Encoding     string // "console" or "json"
	ColorEnabled bool

	// File rotation, disabled when FilePath is empty.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey struct{}

// WithRequestID attaches a request id that every log line of the request carries.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored by WithRequestID.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
