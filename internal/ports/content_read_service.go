package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// ContentReadService — чтение библиотеки для внешних слоёв (HTTP).
type ContentReadService interface {
	GetSnapshot(ctx context.Context, userID string, page int, categoryIDs []string, query string, filters *domain.ContentFilters) *domain.PaginatedContent
	GetUserContentPaginated(ctx context.Context, userID string, page int, categoryIDs []string, query string, filters *domain.ContentFilters) *domain.PaginatedContent
	ClearUserCache(ctx context.Context, userID string)
	ClearAllCache(ctx context.Context)
	CacheSize() int
}
