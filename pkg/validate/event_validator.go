package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
)

// Проверка, что EventValidator удовлетворяет интерфейсу EventValidator.
var _ ports.EventValidator = (*EventValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка валидации события библиотеки.
// Такое сообщение бессмысленно обрабатывать повторно.
var ErrInvalidEvent = errors.New("library event validation failed")

// EventValidator — валидация событий изменения библиотеки.
type EventValidator struct{}

// NewEventValidator — конструктор EventValidator.
// Возвращает ErrInvalidEvent (с обёрнутой причиной) при любой проблеме.
func NewEventValidator() *EventValidator { return &EventValidator{} }

// Validate — проверяет обязательные для типа события поля.
func (v *EventValidator) Validate(_ context.Context, event *domain.LibraryEvent) error {
	if event == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if event.UserID == "" {
		return fmt.Errorf("%w: user_id обязателен", ErrInvalidEvent)
	}
	if !event.OccurredAt.IsZero() && event.OccurredAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: occurred_at некорректен", ErrInvalidEvent)
	}

	switch event.Type {
	case domain.EventContentChanged:
		return nil
	case domain.EventCategoryCreated, domain.EventCategoryDeleted:
		if event.CategoryID == "" {
			return fmt.Errorf("%w: category_id обязателен для %s", ErrInvalidEvent, event.Type)
		}
		return nil
	case domain.EventTrickCreated:
		return v.validateTrickCreated(event)
	case "":
		return fmt.Errorf("%w: type обязателен", ErrInvalidEvent)
	default:
		return fmt.Errorf("%w: неизвестный type %q", ErrInvalidEvent, event.Type)
	}
}

func (v *EventValidator) validateTrickCreated(event *domain.LibraryEvent) error {
	if event.TrickID == "" {
		return fmt.Errorf("%w: trick_id обязателен для %s", ErrInvalidEvent, event.Type)
	}
	for i, id := range event.CategoryIDs {
		if id == "" {
			return fmt.Errorf("%w: category_ids[%s] пустой", ErrInvalidEvent, strconv.Itoa(i))
		}
	}
	return nil
}
