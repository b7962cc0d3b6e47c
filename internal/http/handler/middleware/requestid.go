package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() *requestIDMiddleware {
	return &requestIDMiddleware{}
}

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID header when one is sent.
func (m *requestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIDHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestId)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
