// Package middleware contains http middlewares of plutus api.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"
)

// Storage is a backend of response cache.
type Storage interface {
	// Get returns nil when key is missing.
	Get(ctx context.Context, key string) []byte
	Set(ctx context.Context, key string, content []byte, duration time.Duration)
}

// Cached caches successful responses of handler by request uri for ttl.
func Cached(storage Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := storage.Get(r.Context(), r.RequestURI); content != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(r.Context(), r.RequestURI, content, ttl)
		}

		_, _ = w.Write(content)
	}
}
