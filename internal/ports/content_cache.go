package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// ContentCache — in-memory уровень кэша страниц.
// Требования к реализации: потокобезопасность; ограничение по ёмкости; возврат копий.
type ContentCache interface {
	// Get — (page, true) при попадании по точному ключу, (nil, false) при промахе.
	Get(ctx context.Context, key string) (*domain.PaginatedContent, bool)

	// Set — сохранить страницу; при переполнении вытесняется самая старая по вставке запись.
	Set(ctx context.Context, key string, page *domain.PaginatedContent)

	// DeletePrefix — удалить все ключи с префиксом; возвращает число удалённых.
	DeletePrefix(ctx context.Context, prefix string) int

	// Clear — очистить кэш полностью.
	Clear(ctx context.Context)

	// Len — текущее число записей.
	Len() int
}
