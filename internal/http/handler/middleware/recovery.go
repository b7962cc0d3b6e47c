package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type recoveryMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoveryMiddleware(logger *zap.SugaredLogger) *recoveryMiddleware {
	return &recoveryMiddleware{
		logs: logger,
	}
}

// Recover turns a panicking handler into a 500 response in the API envelope.
func (m *recoveryMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			requestId, _ := r.Context().Value(RequestIDKey).(string)
			m.logs.Errorw("handler panicked",
				"panic", rvr,
				"path", r.URL.Path,
				"request_id", requestId)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"status":  "Internal Server Error!",
				"message": "Internal Server Error!",
			})
		}()

		next.ServeHTTP(w, r)
	})
}
