package logger

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/ctxmeta"
	"go.uber.org/zap"
)

// Проверка, что ZapLogger удовлетворяет порту логгера.
var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger — обёртка над zap с контрактом ports.Logger.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — dev-логгер (консоль, debug) или prod-логгер (JSON, info).
// Возвращает функцию Sync для вызова при остановке.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewNop — логгер без вывода (CLI, тесты).
func NewNop() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{base: l, sugar: l.Sugar()}
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет request_id, user_id и trace_id из контекста (если есть).
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if uid, ok := ctxmeta.UserIDFromContext(ctx); ok {
		s = s.With("user_id", uid)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", tid)
	}
	return s
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
