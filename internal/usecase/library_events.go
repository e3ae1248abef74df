package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
	"github.com/Gunvolt24/trickbook/pkg/validate"
)

// LibraryEventService — реакция на изменения библиотеки, пришедшие из Kafka:
// инвалидация кэша страниц и поддержание пользовательского порядка.
type LibraryEventService struct {
	content   ports.ContentReadService
	orders    ports.OrderWriteService
	validator ports.EventValidator
	log       ports.Logger
}

// NewLibraryEventService — DI-конструктор.
func NewLibraryEventService(
	content ports.ContentReadService,
	orders ports.OrderWriteService,
	validator ports.EventValidator,
	log ports.Logger,
) *LibraryEventService {
	return &LibraryEventService{
		content:   content,
		orders:    orders,
		validator: validator,
		log:       log,
	}
}

// HandleMessage — обработать событие (raw JSON).
//  1. строгий парсинг (DisallowUnknownFields, без хвостовых данных);
//  2. валидация (validate.ErrInvalidEvent — сообщение не имеет смысла повторять);
//  3. обновление порядка и сброс кэша пользователя.
func (s *LibraryEventService) HandleMessage(ctx context.Context, raw []byte) error {
	event, err := validate.EventFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid library event err=%v", err)
		return fmt.Errorf("decode event: %w", err)
	}

	if err := s.apply(ctx, event); err != nil {
		s.log.Errorf(ctx, "library event failed type=%s user=%s err=%v", event.Type, event.UserID, err)
		return err
	}

	s.content.ClearUserCache(ctx, event.UserID)
	s.log.Infof(ctx, "library event applied type=%s user=%s", event.Type, event.UserID)
	return nil
}

func (s *LibraryEventService) apply(ctx context.Context, event *domain.LibraryEvent) error {
	switch event.Type {
	case domain.EventContentChanged:
		return nil
	case domain.EventCategoryCreated:
		return s.orders.InitializeCategoryOrder(ctx, event.UserID, event.CategoryID)
	case domain.EventCategoryDeleted:
		return s.orders.CleanupCategoryOrder(ctx, event.UserID, event.CategoryID)
	case domain.EventTrickCreated:
		for _, categoryID := range event.CategoryIDs {
			if err := s.orders.InitializeTrickOrder(ctx, event.UserID, categoryID, event.TrickID); err != nil {
				return fmt.Errorf("initialize trick order category=%s: %w", categoryID, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", validate.ErrInvalidEvent, event.Type)
	}
}
