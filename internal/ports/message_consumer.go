package ports

import "context"

// MessageConsumer — фоновый потребитель событий библиотеки.
type MessageConsumer interface {
	// Run — блокирующий цикл чтения до отмены контекста.
	Run(ctx context.Context) error
	Close() error
}
