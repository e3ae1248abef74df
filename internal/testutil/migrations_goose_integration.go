//go:build integration

package testutil

import (
	"context"
	"time"

	pgrepo "github.com/Gunvolt24/trickbook/internal/repo/postgres"
)

// ApplyMigrationsGoose — применяет встроенные миграции к контейнерной базе.
func ApplyMigrationsGoose(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return pgrepo.Migrate(ctx, dsn)
}
