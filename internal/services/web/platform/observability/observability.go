// Package observability provides request logging, tracing and metrics
// middleware for the web service.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/stoplaliga/stoplaliga.com/internal/platform/telemetry/metrics"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/stoplaliga/stoplaliga.com/internal/services/web"

// LocaleAttribute records the locale a response was produced for.
const LocaleAttribute = attribute.Key("stoplaliga.locale")

// statusRecorder captures the status code and body size written downstream.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func wrapWriter(w http.ResponseWriter) *statusRecorder {
	if recorder, ok := w.(*statusRecorder); ok {
		return recorder
	}
	return &statusRecorder{ResponseWriter: w}
}

// RequestLogger writes one key=value line per request.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := wrapWriter(w)
			next.ServeHTTP(recorder, r)

			requestID := httpx.RequestIDFrom(r)
			if requestID == "" {
				requestID = "-"
			}
			locale := strings.TrimSpace(recorder.Header().Get("X-Language"))
			if locale == "" {
				locale = "-"
			}
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s locale=%s request_id=%s",
				r.Method,
				r.URL.Path,
				recorder.statusCode(),
				recorder.bytes,
				time.Since(start).Round(time.Microsecond),
				locale,
				requestID,
			)
		})
	}
}

// Tracing starts one server span per request, continuing any trace carried
// in the incoming headers. A nil provider uses the global one.
func Tracing(provider trace.TracerProvider) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.UserAgentOriginal(r.UserAgent()),
				),
			)
			defer span.End()

			recorder := wrapWriter(w)
			next.ServeHTTP(recorder, r.WithContext(ctx))

			status := recorder.statusCode()
			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if locale := recorder.Header().Get("X-Language"); locale != "" {
				span.SetAttributes(LocaleAttribute.String(locale))
			}
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}

// Metrics records request counts and latency on recorder. A nil recorder
// disables the middleware.
func Metrics(recorder *metrics.Recorder) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if recorder == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapWriter(w)
			next.ServeHTTP(wrapped, r)
			recorder.ObserveRequest(r.Method, wrapped.statusCode(), time.Since(start))
		})
	}
}
