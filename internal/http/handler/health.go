package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var GetHealth = "GET /health"

// isoMillis mirrors the ISO-8601 form browsers produce, e.g. 2024-05-01T10:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var TimeNow = time.Now

type HealthHandler struct {
	logs *zap.SugaredLogger
}

func NewHealthHandler(logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{
		logs: logger,
	}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(withPrefix(GetHealth, prefix), h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respond(h.logs, w, HealthResponse{
		Status:    statusOK,
		Message:   "API is running successfully",
		Timestamp: TimeNow().UTC().Format(isoMillis),
	}, http.StatusOK, requestID(r))
}
