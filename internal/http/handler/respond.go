package handler

import (
	"encoding/json"
	"net/http"
	"usermgmt/internal/http/handler/middleware"

	"go.uber.org/zap"
)

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
