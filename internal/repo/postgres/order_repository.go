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

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — пользовательский порядок категорий и трюков в Postgres.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// CategoryOrder — порядок категорий пользователя по возрастанию позиции.
func (r *OrderRepository) CategoryOrder(ctx context.Context, userID string) ([]domain.CategoryOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, category_id, position
		FROM user_category_order
		WHERE user_id = $1
		ORDER BY position ASC, category_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query category order: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryOrder, error) {
		var o domain.CategoryOrder
		err := row.Scan(&o.UserID, &o.CategoryID, &o.Position)
		return o, err
	})
}

// TrickOrder — порядок трюков в категории.
func (r *OrderRepository) TrickOrder(ctx context.Context, userID, categoryID string) ([]domain.TrickOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, category_id, trick_id, position
		FROM user_trick_order
		WHERE user_id = $1 AND category_id = $2
		ORDER BY position ASC, trick_id ASC
	`, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query trick order: %w", err)
	}
	return pgx.CollectRows(rows, scanTrickOrder)
}

// AllTrickOrders — порядок трюков во всех категориях пользователя.
func (r *OrderRepository) AllTrickOrders(ctx context.Context, userID string) ([]domain.TrickOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, category_id, trick_id, position
		FROM user_trick_order
		WHERE user_id = $1
		ORDER BY category_id ASC, position ASC, trick_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query all trick orders: %w", err)
	}
	return pgx.CollectRows(rows, scanTrickOrder)
}

// UpsertCategoryOrders — один INSERT ... ON CONFLICT на всю пачку. Ключи в пачке уникальны.
func (r *OrderRepository) UpsertCategoryOrders(ctx context.Context, orders []domain.CategoryOrder) error {
	if len(orders) == 0 {
		return nil
	}
	users := make([]string, len(orders))
	categories := make([]string, len(orders))
	positions := make([]int32, len(orders))
	for i, o := range orders {
		users[i], categories[i], positions[i] = o.UserID, o.CategoryID, int32(o.Position)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO user_category_order (user_id, category_id, position)
		SELECT * FROM unnest($1::text[], $2::text[], $3::int[])
		ON CONFLICT (user_id, category_id) DO UPDATE SET
			position = EXCLUDED.position,
			updated_at = now()
	`, users, categories, positions); err != nil {
		return fmt.Errorf("upsert category order: %w", err)
	}
	return nil
}

// UpsertTrickOrders — пакетный upsert позиций трюков.
func (r *OrderRepository) UpsertTrickOrders(ctx context.Context, orders []domain.TrickOrder) error {
	if len(orders) == 0 {
		return nil
	}
	users := make([]string, len(orders))
	categories := make([]string, len(orders))
	tricks := make([]string, len(orders))
	positions := make([]int32, len(orders))
	for i, o := range orders {
		users[i], categories[i], tricks[i], positions[i] = o.UserID, o.CategoryID, o.TrickID, int32(o.Position)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO user_trick_order (user_id, category_id, trick_id, position)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::int[])
		ON CONFLICT (user_id, category_id, trick_id) DO UPDATE SET
			position = EXCLUDED.position,
			updated_at = now()
	`, users, categories, tricks, positions); err != nil {
		return fmt.Errorf("upsert trick order: %w", err)
	}
	return nil
}

// DeleteTrickOrder — удалить позицию трюка в категории.
func (r *OrderRepository) DeleteTrickOrder(ctx context.Context, userID, categoryID, trickID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM user_trick_order WHERE user_id = $1 AND category_id = $2 AND trick_id = $3
	`, userID, categoryID, trickID); err != nil {
		return fmt.Errorf("delete trick order: %w", err)
	}
	return nil
}

// DeleteCategoryOrders — транзакционно удаляет позицию категории и позиции трюков в ней.
func (r *OrderRepository) DeleteCategoryOrders(ctx context.Context, userID, categoryID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// после Commit Rollback вернёт ErrTxClosed — это нормально
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM user_trick_order WHERE user_id = $1 AND category_id = $2
	`, userID, categoryID); err != nil {
		return fmt.Errorf("delete trick orders: %w", err)
	}
	if _, err = tx.Exec(ctx, `
		DELETE FROM user_category_order WHERE user_id = $1 AND category_id = $2
	`, userID, categoryID); err != nil {
		return fmt.Errorf("delete category order: %w", err)
	}

	return tx.Commit(ctx)
}

func scanTrickOrder(row pgx.CollectableRow) (domain.TrickOrder, error) {
	var o domain.TrickOrder
	err := row.Scan(&o.UserID, &o.CategoryID, &o.TrickID, &o.Position)
	return o, err
}
