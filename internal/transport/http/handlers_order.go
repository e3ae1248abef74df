package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/usecase"
	"github.com/gin-gonic/gin"
)

type positionRequest struct {
	Position *int `json:"position" binding:"required"`
}

type moveRequest struct {
	From     string `json:"from" binding:"required"`
	To       string `json:"to" binding:"required"`
	Position *int   `json:"position" binding:"required"`
}

func (h *Handler) getCategoryOrder(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	orders, err := h.orders.GetUserCategoryOrder(ctx, c.Param("user"))
	if err != nil {
		h.writeOrderError(c, "GetUserCategoryOrder", err)
		return
	}
	if orders == nil {
		orders = []domain.CategoryOrder{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getTrickOrder(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	orders, err := h.orders.GetUserTrickOrder(ctx, c.Param("user"), c.Param("category"))
	if err != nil {
		h.writeOrderError(c, "GetUserTrickOrder", err)
		return
	}
	if orders == nil {
		orders = []domain.TrickOrder{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getAllTrickOrders(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	orders, err := h.orders.GetAllUserTrickOrders(ctx, c.Param("user"))
	if err != nil {
		h.writeOrderError(c, "GetAllUserTrickOrders", err)
		return
	}
	if orders == nil {
		orders = []domain.TrickOrder{}
	}
	c.JSON(http.StatusOK, orders)
}

// putCategoryOrder — изменение ставится в очередь отложенной записи, ответ 202.
func (h *Handler) putCategoryOrder(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position is required"})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	if err := h.orders.UpdateCategoryOrder(ctx, c.Param("user"), c.Param("category"), *req.Position); err != nil {
		h.writeOrderError(c, "UpdateCategoryOrder", err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) putTrickOrder(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position is required"})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	if err := h.orders.UpdateTrickOrder(ctx, c.Param("user"), c.Param("category"), c.Param("trick"), *req.Position); err != nil {
		h.writeOrderError(c, "UpdateTrickOrder", err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *Handler) moveTrick(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and position are required"})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	user := c.Param("user")
	if err := h.orders.MoveTrickToCategory(ctx, user, c.Param("trick"), req.From, req.To, *req.Position); err != nil {
		h.writeOrderError(c, "MoveTrickToCategory", err)
		return
	}
	// перенос меняет связи трюк–категория, которые лежат в закэшированных страницах
	h.content.ClearUserCache(ctx, user)
	c.Status(http.StatusNoContent)
}

func (h *Handler) initCategoryOrder(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	if err := h.orders.InitializeCategoryOrder(ctx, c.Param("user"), c.Param("category")); err != nil {
		h.writeOrderError(c, "InitializeCategoryOrder", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) initTrickOrder(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	if err := h.orders.InitializeTrickOrder(ctx, c.Param("user"), c.Param("category"), c.Param("trick")); err != nil {
		h.writeOrderError(c, "InitializeTrickOrder", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteCategoryOrder(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	if err := h.orders.CleanupCategoryOrder(ctx, c.Param("user"), c.Param("category")); err != nil {
		h.writeOrderError(c, "CleanupCategoryOrder", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeOrderError — отображение ошибок OrderService в HTTP-статусы.
func (h *Handler) writeOrderError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPosition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrOrderServiceClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service is shutting down"})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed user=%s err=%v", op, c.Param("user"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
