package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")
var ErrUnsupportedDriver = errors.New("unsupported database driver")

type GormDB struct {
	db *gorm.DB
}

// Open connects to the database behind dsn using the named driver
// ("postgres" or "sqlite").
func Open(driver, dsn string, logs *zap.SugaredLogger) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return NewGormDB(dialector, logs)
}

// NewGormDB opens gorm on an already configured dialector.
func NewGormDB(dialector gorm.Dialector, logs *zap.SugaredLogger) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewZapGormLogger(logs),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	return sqlDB.Close()
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// Update sets column to value on the row matching record's primary key.
// ErrNotFound is returned when no row was affected; the row is never
// recreated.
func (f *GormDB) Update(ctx context.Context, record any, column string, value any) error {
	tx := f.db.WithContext(ctx).Model(record).Update(column, value)
	if tx.Error != nil {
		return fmt.Errorf("update record: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes record by its primary key. ErrNotFound is returned when no
// row was affected.
func (f *GormDB) Delete(ctx context.Context, record any) error {
	tx := f.db.WithContext(ctx).Delete(record)
	if tx.Error != nil {
		return fmt.Errorf("delete record: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, orderBy string, entities any) error {
	tx := f.db.WithContext(ctx).Order(orderBy).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}
