package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// ContentSource — удалённый источник данных библиотеки (только чтение).
type ContentSource interface {
	// ListCategories — все категории пользователя, по дате создания (ASC), без фильтров.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// QueryTricks — трюки по запросу; связи с категориями и тегами встроены в каждую запись.
	QueryTricks(ctx context.Context, query *domain.TrickQuery) ([]domain.Trick, error)

	// TrickIDsInCategory — id трюков, привязанных к категории.
	TrickIDsInCategory(ctx context.Context, categoryID string) ([]string, error)
}
