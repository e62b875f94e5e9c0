package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rag-intent-chat/pkg/log"
)

// gormLogger routes gorm output through log.Logger so SQL lines carry the
// request id.
type gormLogger struct {
	l             log.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(l log.Logger, slow time.Duration) logger.Interface {
	return &gormLogger{l: l, level: logger.Warn, slowThreshold: slow}
}

func (g *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Info {
		g.l.Infof(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Warn {
		g.l.Warnf(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Error {
		g.l.Errorf(ctx, "gorm: "+msg, args...)
	}
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= logger.Error:
		sql, rows := fc()
		g.l.Errorf(ctx, "gorm: %v [%s] rows=%d %s", err, elapsed, rows, sql)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= logger.Warn:
		sql, rows := fc()
		g.l.Warnf(ctx, "gorm: slow query [%s] rows=%d %s", elapsed, rows, sql)
	case g.level >= logger.Info:
		sql, rows := fc()
		g.l.Debugf(ctx, "gorm: [%s] rows=%d %s", elapsed, rows, sql)
	}
}
