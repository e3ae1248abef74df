package domain

import "time"

// LibraryEventType — тип изменения библиотеки пользователя.
type LibraryEventType string

const (
	EventContentChanged  LibraryEventType = "content_changed"
	EventCategoryCreated LibraryEventType = "category_created"
	EventCategoryDeleted LibraryEventType = "category_deleted"
	EventTrickCreated    LibraryEventType = "trick_created"
)

// LibraryEvent — сообщение об изменении библиотеки (приходит из Kafka).
type LibraryEvent struct {
	Type        LibraryEventType `json:"type"`
	UserID      string           `json:"user_id"`
	CategoryID  string           `json:"category_id,omitempty"`
	TrickID     string           `json:"trick_id,omitempty"`
	CategoryIDs []string         `json:"category_ids,omitempty"`
	OccurredAt  time.Time        `json:"occurred_at"`
}
