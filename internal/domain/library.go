package domain

import "time"

// Category — пользовательская категория трюков.
type Category struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Trick — трюк пользователя вместе со связями на категории и теги.
type Trick struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Effect     string    `json:"effect,omitempty"`
	Secret     string    `json:"secret,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	IsPublic   bool      `json:"is_public"`
	Difficulty *int      `json:"difficulty,omitempty"`
	Duration   *int      `json:"duration,omitempty"`
	ResetTime  *int      `json:"reset_time,omitempty"`
	Angles     []string  `json:"angles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	CategoryIDs []string `json:"category_ids"`
	TagIDs      []string `json:"tag_ids"`
}

// Technique — техника (в постраничной выдаче пока не заполняется).
type Technique struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Gimmick — реквизит (в постраничной выдаче пока не заполняется).
type Gimmick struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
