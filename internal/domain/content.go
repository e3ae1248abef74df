package domain

import "slices"

// SnapshotSchemaVersion — версия формата PaginatedContent.
// Меняется при любом несовместимом изменении структуры: старые снимки перестают находиться по ключу.
const SnapshotSchemaVersion = 1

// PaginatedContent — одна страница библиотеки пользователя.
// После попадания в кэш не изменяется: кэш хранит копии.
type PaginatedContent struct {
	Version    int         `json:"version"`
	Categories []Category  `json:"categories"`
	Tricks     []Trick     `json:"tricks"`
	Techniques []Technique `json:"techniques"`
	Gimmicks   []Gimmick   `json:"gimmicks"`
	HasMore    bool        `json:"has_more"`
	NextPage   int         `json:"next_page"`
}

// EmptyContent — пустой, но валидный результат (используется и при ошибках чтения).
func EmptyContent(page int) *PaginatedContent {
	return &PaginatedContent{
		Version:    SnapshotSchemaVersion,
		Categories: []Category{},
		Tricks:     []Trick{},
		Techniques: []Technique{},
		Gimmicks:   []Gimmick{},
		HasMore:    false,
		NextPage:   page + 1,
	}
}

// Clone — глубокая копия страницы.
func (p *PaginatedContent) Clone() *PaginatedContent {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Categories = slices.Clone(p.Categories)
	cp.Techniques = slices.Clone(p.Techniques)
	cp.Gimmicks = slices.Clone(p.Gimmicks)
	cp.Tricks = slices.Clone(p.Tricks)
	for i := range cp.Tricks {
		cp.Tricks[i] = p.Tricks[i].clone()
	}
	return &cp
}

func (t *Trick) clone() Trick {
	cp := *t
	cp.Difficulty = cloneInt(t.Difficulty)
	cp.Duration = cloneInt(t.Duration)
	cp.ResetTime = cloneInt(t.ResetTime)
	cp.Angles = slices.Clone(t.Angles)
	cp.CategoryIDs = slices.Clone(t.CategoryIDs)
	cp.TagIDs = slices.Clone(t.TagIDs)
	return cp
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
