package httpx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/pkg/validate"
)

// MaxPage — верхняя граница номера страницы в запросе.
const MaxPage = 10_000

// ErrBadParam — параметр запроса не разбирается.
var ErrBadParam = errors.New("bad query parameter")

// ContentQuery — параметры постраничного чтения библиотеки.
type ContentQuery struct {
	Page        int
	CategoryIDs []string
	Query       string
	Filters     *domain.ContentFilters // nil — фильтры не заданы
}

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseContentQuery — читает page, categories, q и фильтры из query-строки.
// Списки — через запятую. Отрицательная страница приводится к 0.
func ParseContentQuery(c *gin.Context) (ContentQuery, error) {
	var out ContentQuery

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return out, fmt.Errorf("%w: page=%q", ErrBadParam, raw)
		}
		out.Page = ClampInt(page, 0, MaxPage)
	}
	out.CategoryIDs = splitList(c.Query("categories"))
	out.Query = c.Query("q")

	f, err := parseFilters(c)
	if err != nil {
		return out, err
	}
	if !f.IsZero() {
		if err := validate.Filters(&f); err != nil {
			return out, err
		}
		out.Filters = &f
	}
	return out, nil
}

func parseFilters(c *gin.Context) (domain.ContentFilters, error) {
	var (
		f   domain.ContentFilters
		err error
	)

	if raw := c.Query("public"); raw != "" {
		v, pErr := strconv.ParseBool(raw)
		if pErr != nil {
			return f, fmt.Errorf("%w: public=%q", ErrBadParam, raw)
		}
		f.IsPublic = &v
	}
	for _, s := range splitList(c.Query("difficulty")) {
		d, pErr := strconv.Atoi(s)
		if pErr != nil {
			return f, fmt.Errorf("%w: difficulty=%q", ErrBadParam, s)
		}
		f.Difficulties = append(f.Difficulties, d)
	}
	if f.DurationMin, err = optionalInt(c, "duration_min"); err != nil {
		return f, err
	}
	if f.DurationMax, err = optionalInt(c, "duration_max"); err != nil {
		return f, err
	}
	if f.ResetTimeMin, err = optionalInt(c, "reset_min"); err != nil {
		return f, err
	}
	if f.ResetTimeMax, err = optionalInt(c, "reset_max"); err != nil {
		return f, err
	}
	f.Angles = splitList(c.Query("angles"))
	f.Tags = splitList(c.Query("tags"))
	f.TagMode = domain.TagMode(strings.ToLower(strings.TrimSpace(c.Query("tag_mode"))))
	f.SortOrder = domain.SortOrder(strings.ToLower(strings.TrimSpace(c.Query("sort"))))
	return f, nil
}

func optionalInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrBadParam, name, raw)
	}
	return &v, nil
}

// splitList — "a, b,,c" → [a b c]; пустая строка → nil.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
