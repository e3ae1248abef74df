// Пакет ctxmeta — метаданные запроса в context.Context (request_id, user_id, trace_id).
// HTTP-слой кладёт, логгер читает: оба зависят только от этого пакета.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyUserID    ctxKey = "user_id"
)

// WithRequestID — кладёт request_id в контекст (пустое значение игнорируется).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithUserID — владелец библиотеки, к которой относится запрос или событие.
func WithUserID(ctx context.Context, userID string) context.Context {
	return withString(ctx, KeyUserID, userID)
}

// UserIDFromContext — user_id из контекста.
func UserIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyUserID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
