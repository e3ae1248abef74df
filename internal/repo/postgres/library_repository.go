package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что LibraryRepository удовлетворяет интерфейсу LibraryRepository.
var _ ports.LibraryRepository = (*LibraryRepository)(nil)

// LibraryRepository — связи трюков с категориями и избранным.
type LibraryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryRepository — конструктор LibraryRepository.
func NewLibraryRepository(pool *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{pool: pool}
}

// CategoryByID — (nil, nil), если категории нет или она чужая.
func (r *LibraryRepository) CategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`, categoryID, userID).Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select category: %w", err)
	}
	return &c, nil
}

// MoveTrickCategory — перенос связи трюка: удалить из from, добавить в to (в одной транзакции).
func (r *LibraryRepository) MoveTrickCategory(ctx context.Context, trickID, fromCategoryID, toCategoryID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM trick_categories WHERE trick_id = $1 AND category_id = $2
	`, trickID, fromCategoryID); err != nil {
		return fmt.Errorf("unlink trick: %w", err)
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO trick_categories (trick_id, category_id) VALUES ($1, $2)
		ON CONFLICT (trick_id, category_id) DO NOTHING
	`, trickID, toCategoryID); err != nil {
		return fmt.Errorf("link trick: %w", err)
	}

	return tx.Commit(ctx)
}

// AddFavorite — идемпотентно (конфликт по (user_id, trick_id) игнорируется).
func (r *LibraryRepository) AddFavorite(ctx context.Context, userID, trickID string) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO user_favorites (user_id, trick_id) VALUES ($1, $2)
		ON CONFLICT (user_id, trick_id) DO NOTHING
	`, userID, trickID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite — снять отметку избранного.
func (r *LibraryRepository) RemoveFavorite(ctx context.Context, userID, trickID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM user_favorites WHERE user_id = $1 AND trick_id = $2
	`, userID, trickID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
