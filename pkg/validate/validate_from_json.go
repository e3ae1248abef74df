package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/ports"
)

// EventFromJSON — строгий разбор и валидация события из JSON.
func EventFromJSON(ctx context.Context, validator ports.EventValidator, raw []byte) (*domain.LibraryEvent, error) {
	var event domain.LibraryEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidEvent, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidEvent)
	}
	if err := validator.Validate(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
