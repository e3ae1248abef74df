package validate

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// ErrInvalidFilters — некорректные фильтры библиотеки.
var ErrInvalidFilters = errors.New("invalid content filters")

// Допустимый диапазон сложности трюка.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// Filters — проверка фильтров до построения ключа кэша и запроса к источнику.
// nil — без фильтров, это корректно.
func Filters(f *domain.ContentFilters) error {
	if f == nil {
		return nil
	}
	for _, d := range f.Difficulties {
		if d < MinDifficulty || d > MaxDifficulty {
			return fmt.Errorf("%w: difficulty %d вне диапазона [%d, %d]", ErrInvalidFilters, d, MinDifficulty, MaxDifficulty)
		}
	}
	if err := validateRange("duration", f.DurationMin, f.DurationMax); err != nil {
		return err
	}
	if err := validateRange("reset_time", f.ResetTimeMin, f.ResetTimeMax); err != nil {
		return err
	}

	switch f.TagMode {
	case "", domain.TagModeAnd, domain.TagModeOr:
	default:
		return fmt.Errorf("%w: tag_mode %q (ожидается and|or)", ErrInvalidFilters, f.TagMode)
	}
	switch f.SortOrder {
	case "", domain.SortRecentFirst, domain.SortLastFirst:
	default:
		return fmt.Errorf("%w: sort %q (ожидается recent|last)", ErrInvalidFilters, f.SortOrder)
	}
	return nil
}

func validateRange(name string, lo, hi *int) error {
	if lo != nil && *lo < 0 {
		return fmt.Errorf("%w: %s_min должен быть неотрицательным", ErrInvalidFilters, name)
	}
	if hi != nil && *hi < 0 {
		return fmt.Errorf("%w: %s_max должен быть неотрицательным", ErrInvalidFilters, name)
	}
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("%w: %s_min > %s_max", ErrInvalidFilters, name, name)
	}
	return nil
}
