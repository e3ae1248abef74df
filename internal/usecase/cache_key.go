package usecase

import (
	"encoding/json"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// Сентинелы частей ключа кэша.
const (
	keyAllCategories = "all"
	keyNoQuery       = "no-query"
	keyNoFilters     = "no-filters"
)

// BuildCacheKey — детерминированный ключ страницы:
//
//	<user>:v<schema>:p<page>:<categories|all>:<query|no-query>:<filters|no-filters>
//
// Категории сортируются и дедуплицируются, запрос нормализуется (trim + lower),
// фильтры сериализуются канонически. Части экранируются, поэтому ':' внутри запроса
// не может склеить два разных ключа.
func BuildCacheKey(userID string, page int, categoryIDs []string, query string, filters *domain.ContentFilters) string {
	var b strings.Builder
	b.WriteString(UserKeyPrefix(userID))
	b.WriteString("v")
	b.WriteString(strconv.Itoa(domain.SnapshotSchemaVersion))
	b.WriteString(":p")
	b.WriteString(strconv.Itoa(max(page, 0))) // отрицательная страница — та же, что нулевая
	b.WriteString(":")

	cats := normalizeIDs(categoryIDs)
	if len(cats) == 0 {
		b.WriteString(keyAllCategories)
	} else {
		for i, id := range cats {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(url.QueryEscape(id))
		}
	}
	b.WriteString(":")

	if q := normalizeQuery(query); q == "" {
		b.WriteString(keyNoQuery)
	} else {
		b.WriteString(url.QueryEscape(q))
	}
	b.WriteString(":")

	b.WriteString(serializeFilters(filters))
	return b.String()
}

// UserKeyPrefix — префикс всех ключей пользователя (с разделителем, чтобы "u1" не задевал "u10").
func UserKeyPrefix(userID string) string {
	return url.QueryEscape(userID) + ":"
}

// NormalizeFilters — каноническая копия фильтров: срезы отсортированы и без повторов,
// значения по умолчанию приведены к пустым. nil на входе — нулевые фильтры.
func NormalizeFilters(f *domain.ContentFilters) domain.ContentFilters {
	if f == nil {
		return domain.ContentFilters{}
	}
	n := *f

	n.Difficulties = slices.Clone(f.Difficulties)
	slices.Sort(n.Difficulties)
	n.Difficulties = slices.Compact(n.Difficulties)
	if len(n.Difficulties) == 0 {
		n.Difficulties = nil
	}
	n.Angles = normalizeIDs(f.Angles)
	n.Tags = normalizeIDs(f.Tags)

	switch {
	case len(n.Tags) == 0:
		n.TagMode = ""
	case n.TagMode == "":
		n.TagMode = domain.TagModeAnd
	}
	if n.SortOrder == domain.SortRecentFirst {
		n.SortOrder = ""
	}
	return n
}

// serializeFilters — JSON канонической формы; поля структуры идут в фиксированном порядке.
func serializeFilters(f *domain.ContentFilters) string {
	n := NormalizeFilters(f)
	if n.IsZero() {
		return keyNoFilters
	}
	raw, err := json.Marshal(&n)
	if err != nil {
		// ContentFilters состоит из простых типов; сюда не попадаем.
		return keyNoFilters
	}
	return url.QueryEscape(string(raw))
}

// normalizeIDs — trim, без пустых, отсортировано, без повторов; nil при пустом результате.
func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// KeySchemaVersion — версия схемы, зашитая в ключ; false, если ключ не нашего формата.
func KeySchemaVersion(key string) (int, bool) {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 3 || !strings.HasPrefix(parts[1], "v") {
		return 0, false
	}
	v, err := strconv.Atoi(parts[1][1:])
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsStaleKey — ключ от другой версии схемы (или чужого формата): такой снимок уже не будет прочитан.
func IsStaleKey(key string) bool {
	v, ok := KeySchemaVersion(key)
	return !ok || v != domain.SnapshotSchemaVersion
}
