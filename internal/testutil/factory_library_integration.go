//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// UniqSuffix — короткий случайный суффикс для id.
func UniqSuffix() string { return randHex(6) }

// NewUserID — уникальный пользователь на тест.
func NewUserID() string { return "user-" + UniqSuffix() }

// MakeTrick — минимальный трюк пользователя; опции дополняют поля.
func MakeTrick(userID string, opts ...func(*domain.Trick)) domain.Trick {
	t := domain.Trick{
		ID:        "trick-" + UniqSuffix(),
		UserID:    userID,
		Title:     "Trick " + UniqSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Angles:    []string{},
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func WithTitle(title string) func(*domain.Trick) {
	return func(t *domain.Trick) { t.Title = title }
}

func WithDifficulty(d int) func(*domain.Trick) {
	return func(t *domain.Trick) { t.Difficulty = &d }
}

func WithTags(tags ...string) func(*domain.Trick) {
	return func(t *domain.Trick) { t.TagIDs = tags }
}

func WithCategories(ids ...string) func(*domain.Trick) {
	return func(t *domain.Trick) { t.CategoryIDs = ids }
}

func WithAngles(angles ...string) func(*domain.Trick) {
	return func(t *domain.Trick) { t.Angles = angles }
}

func WithCreatedAt(at time.Time) func(*domain.Trick) {
	return func(t *domain.Trick) { t.CreatedAt = at.UTC().Truncate(time.Millisecond) }
}

// InsertCategory — категория пользователя с заданным именем.
func InsertCategory(ctx context.Context, pool *pgxpool.Pool, userID, name string) (domain.Category, error) {
	c := domain.Category{
		ID:        "cat-" + UniqSuffix(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, user_id, name, description, created_at) VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.UserID, c.Name, c.Description, c.CreatedAt)
	if err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// InsertTrick — трюк вместе со связями на категории и теги.
func InsertTrick(ctx context.Context, pool *pgxpool.Pool, t domain.Trick) error {
	if _, err := pool.Exec(ctx, `
		INSERT INTO tricks (id, user_id, title, effect, secret, notes, is_public, difficulty, duration, reset_time, angles, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, t.ID, t.UserID, t.Title, t.Effect, t.Secret, t.Notes, t.IsPublic,
		t.Difficulty, t.Duration, t.ResetTime, t.Angles, t.CreatedAt); err != nil {
		return fmt.Errorf("insert trick: %w", err)
	}
	for _, categoryID := range t.CategoryIDs {
		if _, err := pool.Exec(ctx, `
			INSERT INTO trick_categories (trick_id, category_id) VALUES ($1, $2)
		`, t.ID, categoryID); err != nil {
			return fmt.Errorf("link category: %w", err)
		}
	}
	for _, tag := range t.TagIDs {
		if _, err := pool.Exec(ctx, `
			INSERT INTO trick_tags (trick_id, tag_id) VALUES ($1, $2)
		`, t.ID, tag); err != nil {
			return fmt.Errorf("link tag: %w", err)
		}
	}
	return nil
}
