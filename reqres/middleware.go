package reqres

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Responder handles a single outbound request.
type Responder func(*http.Request) (*http.Response, error)

// MiddlewareFunc wraps a Responder with extra behaviour.
type MiddlewareFunc func(next Responder) Responder

// Transport is an http.RoundTripper that runs every request through a
// middleware chain before handing it to the base transport.
type Transport struct {
	base       http.RoundTripper
	middleware []MiddlewareFunc
}

// NewTransport creates a Transport on top of base. A nil base uses
// http.DefaultTransport.
func NewTransport(base http.RoundTripper, middleware ...MiddlewareFunc) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, middleware: middleware}
}

// Use adds middleware to the chain. Middleware runs in the order it was added.
func (t *Transport) Use(middleware ...MiddlewareFunc) {
	t.middleware = append(t.middleware, middleware...)
}

// RoundTrip executes a single HTTP transaction through the chain.
// Middleware works on a clone, the caller's request is never modified.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	h := Responder(t.base.RoundTrip)
	for i := len(t.middleware) - 1; i >= 0; i-- {
		h = t.middleware[i](h)
	}
	return h(req)
}

// UserAgent sets the User-Agent header to app/version.
func UserAgent(app, version string) MiddlewareFunc {
	userAgent := app + "/" + version
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			req.Header.Set("User-Agent", userAgent)
			return next(req)
		}
	}
}

// APIKey sends key in the x-api-key header. An empty key is a no-op.
func APIKey(key string) MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			if key != "" {
				req.Header.Set("x-api-key", key)
			}
			return next(req)
		}
	}
}

// RequestID tags every request with a fresh X-Request-ID unless one is set.
func RequestID() MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-ID") == "" {
				req.Header.Set("X-Request-ID", uuid.New().String())
			}
			return next(req)
		}
	}
}

// Logging writes one debug line per request and a warning for failures.
func Logging() MiddlewareFunc {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(req)
			ev := log.Debug()
			if err != nil {
				ev = log.Warn().Err(err)
			} else if resp.StatusCode >= 300 {
				ev = log.Warn()
			}
			if resp != nil {
				ev = ev.Int("status", resp.StatusCode)
			}
			ev.Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("request_id", req.Header.Get("X-Request-ID")).
				Dur("elapsed", time.Since(start)).
				Msg("reqres call")
			return resp, err
		}
	}
}
