// Package utils provides general-purpose helper utilities
// used across different parts of the launcher and the directory server.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// LaunchIDCtxKey stores the identifier of the current launcher run.
	LaunchIDCtxKey = contextKey("launchID")
	// TraceIDCtxKey stores the trace identifier of a directory request.
	TraceIDCtxKey = contextKey("traceID")
)

// WithLaunchID returns a copy of ctx carrying id under [LaunchIDCtxKey].
func WithLaunchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, LaunchIDCtxKey, id)
}

// GetLaunchIDFromContext retrieves the launch identifier from the context.
//
// Returns ok == false when the value is missing, empty or not a string.
func GetLaunchIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, LaunchIDCtxKey)
}

// WithTraceID returns a copy of ctx carrying id under [TraceIDCtxKey].
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, id)
}

// GetTraceIDFromContext retrieves the request trace identifier.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, TraceIDCtxKey)
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}
