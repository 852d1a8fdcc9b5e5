// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the catalog admin server and catalogctl.
//
// Entries are JSON lines carrying the process role, a timestamp and the
// calling function. Request handlers attach a request-scoped logger to the
// context; everything below the handler reads it back with FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a Debug level logger writing to stdout.
func NewLogger(role string) *Logger {
	return NewWriterLogger(os.Stdout, role)
}

// NewWriterLogger returns a Debug level logger writing to w.
func NewWriterLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger that adds key=value to every entry. The
// receiver is left untouched.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{l.Logger.With().Interface(key, value).Logger()}
}

// Into stores the logger in ctx for FromContext and FromRequest.
func (l *Logger) Into(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog falls
// back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
