package usecase_test

import (
	"context"
	"fmt"
	"sync"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// recLogger — запоминает предупреждения и ошибки.
type recLogger struct {
	noopLogger
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (l *recLogger) Warnf(_ context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recLogger) Errorf(_ context.Context, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
