package ports

import (
	"context"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

type EventValidator interface {
	Validate(ctx context.Context, event *domain.LibraryEvent) error
}
