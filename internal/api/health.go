package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// HealthResponse ...
type HealthResponse struct {
	VersionResponse
	Meta   map[string]interface{} `json:"meta"`
	Errors map[string]string      `json:"errors,omitempty"`
}

// Pinger pings external service.
type Pinger interface {
	// Ping returns object with meta information and error
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) (interface{}, error) {
	return nil, p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger returns wrapper over Ping function, e.g. (sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// HealthHandler returns handler which pings every p and responds 503 if any failed.
func HealthHandler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var (
			gr errgroup.Group
			mu sync.Mutex
		)

		resp := HealthResponse{
			VersionResponse: VersionResponse{Version: version, Commit: commit},
			Meta:            map[string]interface{}{},
			Errors:          map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				resp.Meta[v.Name()] = m
				if err != nil {
					GetLogger(r.Context()).WithError(err).WithField("subject", v.Name()).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
				}

				return nil
			})
		}

		// nolint:errcheck
		gr.Wait()

		status := http.StatusOK
		if len(resp.Errors) > 0 {
			status = http.StatusServiceUnavailable
		}

		WriteOK(w, status, resp)
	}
}
