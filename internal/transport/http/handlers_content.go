package rest

import (
	"net/http"

	"github.com/Gunvolt24/trickbook/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// getContent — страница библиотеки (кэш → источник). Ошибки источника дают пустую страницу, не 5xx.
func (h *Handler) getContent(c *gin.Context) {
	q, err := httpx.ParseContentQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	page := h.content.GetUserContentPaginated(ctx, c.Param("user"), q.Page, q.CategoryIDs, q.Query, q.Filters)
	c.JSON(http.StatusOK, page)
}

// getSnapshot — только локальные уровни кэша, без обращения к источнику.
func (h *Handler) getSnapshot(c *gin.Context) {
	q, err := httpx.ParseContentQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	page := h.content.GetSnapshot(ctx, c.Param("user"), q.Page, q.CategoryIDs, q.Query, q.Filters)
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) clearUserCache(c *gin.Context) {
	h.content.ClearUserCache(c.Request.Context(), c.Param("user"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearAllCache(c *gin.Context) {
	h.content.ClearAllCache(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) cacheSize(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"size": h.content.CacheSize()})
}
