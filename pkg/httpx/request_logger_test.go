package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Gunvolt24/trickbook/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recLogger — запоминает уровень и шаблон строки.
type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recLogger) add(level, format string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+format)
}

func (l *recLogger) Debugf(_ context.Context, f string, _ ...any) { l.add("debug", f) }
func (l *recLogger) Infof(_ context.Context, f string, _ ...any)  { l.add("info", f) }
func (l *recLogger) Warnf(_ context.Context, f string, _ ...any)  { l.add("warn", f) }
func (l *recLogger) Errorf(_ context.Context, f string, _ ...any) { l.add("error", f) }

func TestRequestLogger_LevelsAndQuietPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &recLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ping", "/ok", "/bad", "/boom", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, log.lines, 4, "ping must not be logged: %v", log.lines)
	levels := make([]string, 0, len(log.lines))
	for _, line := range log.lines {
		levels = append(levels, strings.SplitN(line, " ", 2)[0])
	}
	assert.Equal(t, []string{"info", "warn", "error", "warn"}, levels)
}

func TestRequestLogger_CustomQuietPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &recLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log, "/health"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Len(t, log.lines, 1)
}
