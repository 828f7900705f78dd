package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gytax/internal/platform/logger"
	"gytax/internal/requestctx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	n, err := s.ResponseWriter.Write(p)
	s.bytes += n
	return n, err
}

// RecordedRequest is what Observe hands to its callback once the handler
// has returned.
type RecordedRequest struct {
	Route    string
	Method   string
	Status   int
	Bytes    int
	Duration time.Duration
}

// Observe runs next and reports the matched route pattern, status and
// latency of every request.
func Observe(record func(*http.Request, RecordedRequest)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			record(r, RecordedRequest{
				Route:    routePattern(r),
				Method:   r.Method,
				Status:   recorder.status,
				Bytes:    recorder.bytes,
				Duration: time.Since(start),
			})
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// Logger writes one structured line per request.
func Logger(base *zap.Logger) func(http.Handler) http.Handler {
	return Observe(func(r *http.Request, req RecordedRequest) {
		log := logger.WithContext(r.Context(), base)
		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", req.Route),
			zap.String("client_ip", requestctx.GetClientIP(r.Context())),
			zap.Int("status", req.Status),
			zap.Int("bytes", req.Bytes),
			zap.Int64("duration_ms", req.Duration.Milliseconds()),
		}
		switch {
		case req.Status >= http.StatusInternalServerError:
			log.Error("request completed", fields...)
		case req.Status >= http.StatusBadRequest:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	})
}

// RequestRecorder receives request metrics.
type RequestRecorder interface {
	Record(route, method string, status int, duration time.Duration)
}

func Metrics(recorder RequestRecorder) func(http.Handler) http.Handler {
	return Observe(func(_ *http.Request, req RecordedRequest) {
		recorder.Record(req.Route, req.Method, req.Status, req.Duration)
	})
}
