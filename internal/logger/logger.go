// Package logger re-exports the shared goLogger package so internal code
// imports it by a stable local path.
package logger

import (
	"context"

	pkglogger "github.com/Bparsons0904/goLogger"
)

type Logger = pkglogger.Logger

var (
	New                = pkglogger.New
	ContextWithTraceID = pkglogger.ContextWithTraceID
)

// NewWithContext creates a logger carrying the trace ID from ctx, if any.
func NewWithContext(ctx context.Context, name string) Logger {
	return pkglogger.New(name).TraceFromContext(ctx)
}
