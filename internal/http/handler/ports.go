package handler

import (
	"context"
	"net/http"
	"usermgmt/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	CreateUser(ctx context.Context, username string) (core.UserRecord, error)
	UpdateUser(ctx context.Context, userID int64, username string) (core.UserRecord, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetUser(ctx context.Context, userID int64) (core.UserRecord, error)
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
}

//counterfeiter:generate -o fake -fake-name AnalyticsService . AnalyticsService
type AnalyticsService interface {
	GetUserAnalytics(ctx context.Context) (core.Analytics, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
