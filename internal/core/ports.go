package core

import (
	"context"
	"usermgmt/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	Save(ctx context.Context, username string) (repository.User, error)
	Update(ctx context.Context, userID int64, username string) (repository.User, error)
	Delete(ctx context.Context, userID int64) error
	RetrieveByID(ctx context.Context, userID int64) (repository.User, error)
	RetrieveAll(ctx context.Context) ([]repository.User, error)
}
