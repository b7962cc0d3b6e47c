package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	Update(ctx context.Context, record any, column string, value any) error
	Delete(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, orderBy string, entities any) error
}
