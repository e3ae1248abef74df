package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// LibraryRepository — связи трюков с категориями и избранным.
type LibraryRepository interface {
	// CategoryByID — категория пользователя; (nil, nil), если не найдена.
	CategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// MoveTrickCategory — перенести связь трюка из одной категории в другую.
	MoveTrickCategory(ctx context.Context, trickID, fromCategoryID, toCategoryID string) error

	// AddFavorite — идемпотентная отметка «в избранном».
	AddFavorite(ctx context.Context, userID, trickID string) error
	RemoveFavorite(ctx context.Context, userID, trickID string) error
}
