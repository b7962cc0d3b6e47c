package db

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// zapGormLogger forwards gorm's diagnostics to zap. Only failed and slow
// statements are reported; missing rows are expected and stay quiet.
type zapGormLogger struct {
	logs  *zap.SugaredLogger
	level logger.LogLevel
}

func NewZapGormLogger(logs *zap.SugaredLogger) logger.Interface {
	return &zapGormLogger{
		logs:  logs.Named("gorm"),
		level: logger.Warn,
	}
}

func (l *zapGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *zapGormLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		l.logs.Infof(msg, args...)
	}
}

func (l *zapGormLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		l.logs.Warnf(msg, args...)
	}
}

func (l *zapGormLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		l.logs.Errorf(msg, args...)
	}
}

func (l *zapGormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logs.Errorw("query failed", "error", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.logs.Warnw("slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.logs.Debugw("query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
