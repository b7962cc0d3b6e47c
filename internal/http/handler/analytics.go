package handler

import (
	"net/http"

	"go.uber.org/zap"
)

var GetAnalytics = "GET /analytics"

type AnalyticsHandler struct {
	logs      *zap.SugaredLogger
	analytics AnalyticsService
}

func NewAnalyticsHandler(logger *zap.SugaredLogger, analyticsService AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logs:      logger,
		analytics: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(withPrefix(GetAnalytics, prefix), h.HandleGetAnalytics)
}

func (h *AnalyticsHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	analytics, err := h.analytics.GetUserAnalytics(r.Context())
	if err != nil {
		respond(h.logs, w, Response{
			Status:  statusInternal,
			Message: "Failed to generate analytics",
			Error:   err.Error(),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to generate analytics",
			"error", err,
			"handler", GetAnalytics,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Status:  statusOK,
		Message: "Analytics generated successfully",
		Data:    analytics,
	}, http.StatusOK, requestId)
}
