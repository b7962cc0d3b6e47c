package handler

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const APIPrefix = "/api/v1"

var Home = "GET /{$}"

// RouteRegistrar is implemented by handlers that expose endpoints under a
// common path prefix.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, prefix string)
}

// NewRouter builds a fresh mux serving the home page and every registrar's
// routes under APIPrefix.
func NewRouter(logger *zap.SugaredLogger, registrars ...RouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(Home, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Home")); err != nil {
			logger.Errorw("failed to write response", "error", err, "handler", Home)
		}
	})

	for _, reg := range registrars {
		reg.RegisterRoutes(mux, APIPrefix)
	}

	return mux
}

// withPrefix turns "GET /users" into "GET /api/v1/users".
func withPrefix(pattern, prefix string) string {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return prefix + pattern
	}
	return method + " " + prefix + path
}
