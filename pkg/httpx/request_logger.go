package httpx

import (
	"time"

	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// DefaultQuietPaths — служебные маршруты, которые не пишутся в лог.
var DefaultQuietPaths = []string{"/metrics", "/ping", "/cache/size"}

// RequestLogger — одна строка лога на запрос. 5xx пишутся как ошибки, 4xx как предупреждения.
// request_id, user_id и trace_id логгер берёт из контекста сам.
func RequestLogger(log ports.Logger, quietPaths ...string) gin.HandlerFunc {
	if len(quietPaths) == 0 {
		quietPaths = DefaultQuietPaths
	}
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := quiet[route]; ok {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		status := c.Writer.Status()
		logf := log.Infof
		switch {
		case status >= 500:
			logf = log.Errorf
		case status >= 400:
			logf = log.Warnf
		}
		logf(ctx, "http %s %s status=%d took=%s bytes=%d ip=%s span=%s",
			c.Request.Method, route, status, time.Since(start), c.Writer.Size(), c.ClientIP(), sp)
	}
}
