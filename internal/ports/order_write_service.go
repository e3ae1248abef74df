package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// OrderWriteService — операции над пользовательским порядком для внешних слоёв (HTTP, события).
type OrderWriteService interface {
	GetUserCategoryOrder(ctx context.Context, userID string) ([]domain.CategoryOrder, error)
	GetUserTrickOrder(ctx context.Context, userID, categoryID string) ([]domain.TrickOrder, error)
	GetAllUserTrickOrders(ctx context.Context, userID string) ([]domain.TrickOrder, error)

	UpdateCategoryOrder(ctx context.Context, userID, categoryID string, position int) error
	UpdateTrickOrder(ctx context.Context, userID, categoryID, trickID string, position int) error

	MoveTrickToCategory(ctx context.Context, userID, trickID, fromCategoryID, toCategoryID string, newPosition int) error

	InitializeCategoryOrder(ctx context.Context, userID, categoryID string) error
	InitializeTrickOrder(ctx context.Context, userID, categoryID, trickID string) error
	CleanupCategoryOrder(ctx context.Context, userID, categoryID string) error
}
