package httpx

import (
	"github.com/Gunvolt24/trickbook/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// UserIDMiddleware — кладёт значение path-параметра с id пользователя в контекст запроса (для логов).
func UserIDMiddleware(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.Param(param); userID != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithUserID(c.Request.Context(), userID))
		}
		c.Next()
	}
}
