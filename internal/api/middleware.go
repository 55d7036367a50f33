package api

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/tomasen/realip"
)

// LoggerMiddleware logs every request with its status and duration.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			GetLogger(r.Context()).
				WithField("method", r.Method).
				WithField("path", r.URL.Path).
				WithField("ip", realip.FromRequest(r)).
				WithField("status", ww.Status()).
				WithField("duration", time.Since(start)).
				Debug("request")
		}()

		next.ServeHTTP(ww, r)
	})
}

// RequestIDMiddleware puts request id into context and response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	}))
}

// RecovererMiddleware turns panics into 500.
func RecovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil && v != http.ErrAbortHandler {
				GetLogger(r.Context()).WithField("stack", string(debug.Stack())).Errorf("panic: %v", v)
				WriteError(w, http.StatusInternalServerError, "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// TimeoutMiddleware cancels request context after timeout.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyLimiterMiddleware limits size of request body.
func BodyLimiterMiddleware(size int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, size)
			}

			next.ServeHTTP(w, r)
		})
	}
}
