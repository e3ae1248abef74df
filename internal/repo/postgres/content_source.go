package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ContentSource удовлетворяет интерфейсу ContentSource.
var _ ports.ContentSource = (*ContentSource)(nil)

// ContentSource — чтение библиотеки из Postgres.
type ContentSource struct {
	pool *pgxpool.Pool
}

// NewContentSource — конструктор ContentSource.
func NewContentSource(pool *pgxpool.Pool) *ContentSource { return &ContentSource{pool: pool} }

// ListCategories — категории пользователя по дате создания.
func (s *ContentSource) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows categories: %w", err)
	}
	return out, nil
}

// QueryTricks — трюки по фильтрам; id категорий и тегов встроены в каждую запись.
func (s *ContentSource) QueryTricks(ctx context.Context, q *domain.TrickQuery) ([]domain.Trick, error) {
	sql, args := buildTrickQuery(q)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query tricks: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanTrick)
	if err != nil {
		return nil, fmt.Errorf("scan tricks: %w", err)
	}
	return out, nil
}

// TrickIDsInCategory — id трюков, привязанных к категории.
func (s *ContentSource) TrickIDsInCategory(ctx context.Context, categoryID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT trick_id FROM trick_categories WHERE category_id = $1 ORDER BY trick_id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query category tricks: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan category tricks: %w", err)
	}
	return ids, nil
}

func scanTrick(row pgx.CollectableRow) (domain.Trick, error) {
	var t domain.Trick
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Effect, &t.Secret, &t.Notes, &t.IsPublic,
		&t.Difficulty, &t.Duration, &t.ResetTime, &t.Angles, &t.CreatedAt,
		&t.CategoryIDs, &t.TagIDs,
	)
	return t, err
}
