// Package migrations — SQL-миграции схемы библиотеки (goose).
package migrations

import "embed"

// FS — встроенные файлы миграций.
//
//go:embed *.sql
var FS embed.FS
