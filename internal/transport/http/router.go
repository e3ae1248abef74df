package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики кэша библиотеки и пользовательского порядка.
type Handler struct {
	content    ports.ContentReadService
	orders     ports.OrderWriteService
	log        ports.Logger
	reqTimeout time.Duration // таймаут на вызов сервиса; 0 — без ограничения
}

// NewHandler — DI-конструктор.
func NewHandler(content ports.ContentReadService, orders ports.OrderWriteService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{content: content, orders: orders, log: log, reqTimeout: reqTimeout}
}

// NewRouter — gin-роутер со служебными маршрутами и API.
// otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.DELETE("/cache", h.clearAllCache)
	r.GET("/cache/size", h.cacheSize)

	users := r.Group("/users/:user", httpx.UserIDMiddleware("user"))
	{
		users.GET("/content", h.getContent)
		users.GET("/content/snapshot", h.getSnapshot)
		users.DELETE("/cache", h.clearUserCache)

		users.GET("/order/categories", h.getCategoryOrder)
		users.GET("/order/tricks", h.getAllTrickOrders)
		users.GET("/order/categories/:category/tricks", h.getTrickOrder)
		users.PUT("/order/categories/:category", h.putCategoryOrder)
		users.PUT("/order/categories/:category/tricks/:trick", h.putTrickOrder)
		users.POST("/order/categories/:category/init", h.initCategoryOrder)
		users.POST("/order/categories/:category/tricks/:trick/init", h.initTrickOrder)
		users.DELETE("/order/categories/:category", h.deleteCategoryOrder)

		users.POST("/tricks/:trick/move", h.moveTrick)
	}

	return r
}

// withTimeout — контекст вызова сервиса с таймаутом обработчика.
func (h *Handler) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}
