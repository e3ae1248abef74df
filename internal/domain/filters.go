package domain

// TagMode — режим фильтрации по тегам.
type TagMode string

const (
	TagModeAnd TagMode = "and" // все запрошенные теги
	TagModeOr  TagMode = "or"  // хотя бы один
)

// SortOrder — порядок выдачи трюков по дате создания.
type SortOrder string

const (
	SortRecentFirst SortOrder = "recent" // по умолчанию: новые сверху
	SortLastFirst   SortOrder = "last"   // старые сверху
)

// ContentFilters — набор фильтров библиотеки.
// Нулевое значение означает «без фильтров».
type ContentFilters struct {
	IsPublic     *bool     `json:"is_public,omitempty"`
	Difficulties []int     `json:"difficulties,omitempty"`
	DurationMin  *int      `json:"duration_min,omitempty"`
	DurationMax  *int      `json:"duration_max,omitempty"`
	ResetTimeMin *int      `json:"reset_time_min,omitempty"`
	ResetTimeMax *int      `json:"reset_time_max,omitempty"`
	Angles       []string  `json:"angles,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	TagMode      TagMode   `json:"tag_mode,omitempty"`
	SortOrder    SortOrder `json:"sort_order,omitempty"`
}

// IsZero — true, если не задан ни один фильтр.
func (f *ContentFilters) IsZero() bool {
	if f == nil {
		return true
	}
	return f.IsPublic == nil &&
		len(f.Difficulties) == 0 &&
		f.DurationMin == nil && f.DurationMax == nil &&
		f.ResetTimeMin == nil && f.ResetTimeMax == nil &&
		len(f.Angles) == 0 &&
		len(f.Tags) == 0 &&
		f.TagMode == "" &&
		f.SortOrder == ""
}

// TrickQuery — запрос трюков к удалённому источнику.
// Теги в запрос не входят: они фильтруются после выборки.
type TrickQuery struct {
	UserID  string
	Search  string
	Filters ContentFilters
	// TrickIDs — ограничение выборки набором id (фильтр по категориям); nil — без ограничения.
	TrickIDs []string
	// Limit/Offset — окно страницы; Limit == 0 означает выборку без ограничения.
	Limit  int
	Offset int
}
