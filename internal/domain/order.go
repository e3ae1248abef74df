package domain

// CategoryOrder — позиция категории в пользовательском порядке.
type CategoryOrder struct {
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	Position   int    `json:"position"`
}

// Key — составной ключ (user, category).
func (o CategoryOrder) Key() string { return o.UserID + "|" + o.CategoryID }

// TrickOrder — позиция трюка внутри категории.
type TrickOrder struct {
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	TrickID    string `json:"trick_id"`
	Position   int    `json:"position"`
}

// Key — составной ключ (user, category, trick).
func (o TrickOrder) Key() string { return o.UserID + "|" + o.CategoryID + "|" + o.TrickID }
