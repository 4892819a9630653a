package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// AllowedMethods is advertised on preflight responses.
const AllowedMethods = "GET, POST, PUT, PATCH, DELETE"

// CORSGate reflects allowed origins back to the browser. Requests without an
// Origin header are same-origin or non-browser and get no CORS headers.
type CORSGate struct {
	origins map[string]struct{}
	log     *zap.Logger
}

func NewCORSGate(allowedOrigins []string, log *zap.Logger) *CORSGate {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return &CORSGate{
		origins: origins,
		log:     log.With(zap.String("middleware", "cors")),
	}
}

// Allowed reports whether a request carrying this Origin may be served
// cross-origin. An empty origin is always allowed.
func (g *CORSGate) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	_, ok := g.origins[origin]
	return ok
}

// apply sets the allow-origin header and reports whether origin was allowed.
func (g *CORSGate) apply(w http.ResponseWriter, r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if !g.Allowed(origin) {
		g.log.Debug("Origin not allowed", zap.String("origin", origin))
		return false
	}

	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")
	}
	return true
}

// CORS middleware
func (g *CORSGate) CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g.apply(w, r)
			next.ServeHTTP(w, r)
		})
	}
}

// Preflight answers OPTIONS requests. The status is always 200; the CORS
// headers are only present when the origin is allowed.
func (g *CORSGate) Preflight(w http.ResponseWriter, r *http.Request) {
	if g.apply(w, r) {
		w.Header().Set("Access-Control-Allow-Methods", AllowedMethods)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
