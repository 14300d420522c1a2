// Package requestctx carries request-scoped values through context.
package requestctx

import (
	"context"

	"golang.org/x/text/language"
)

// localeContextKey is the context key for the resolved request locale.
type localeContextKey struct{}

// requestIDContextKey is the context key for the request correlation id.
type requestIDContextKey struct{}

// WithLocale stores the resolved locale in context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, tag)
}

// LocaleFromContext returns the locale stored in context.
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	if ctx == nil {
		return language.Und, false
	}
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	return tag, ok
}

// WithRequestID stores a request correlation id in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the request correlation id stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey{}).(string)
	return value
}
