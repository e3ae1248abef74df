package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// OrderRepository — хранилище пользовательского порядка категорий и трюков.
type OrderRepository interface {
	CategoryOrder(ctx context.Context, userID string) ([]domain.CategoryOrder, error)
	TrickOrder(ctx context.Context, userID, categoryID string) ([]domain.TrickOrder, error)
	AllTrickOrders(ctx context.Context, userID string) ([]domain.TrickOrder, error)

	// UpsertCategoryOrders / UpsertTrickOrders — пакетный upsert по естественному составному ключу.
	UpsertCategoryOrders(ctx context.Context, orders []domain.CategoryOrder) error
	UpsertTrickOrders(ctx context.Context, orders []domain.TrickOrder) error

	DeleteTrickOrder(ctx context.Context, userID, categoryID, trickID string) error

	// DeleteCategoryOrders — удалить порядок категории и все позиции трюков в ней.
	DeleteCategoryOrders(ctx context.Context, userID, categoryID string) error
}
