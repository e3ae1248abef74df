package usecase

import (
	"slices"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

// filterByTags — фильтр по тегам в памяти (связь многие-ко-многим не уходит в удалённый запрос).
// and — у трюка есть все запрошенные теги; or — хотя бы один.
func filterByTags(tricks []domain.Trick, tags []string, mode domain.TagMode) []domain.Trick {
	if len(tags) == 0 {
		return tricks
	}

	out := make([]domain.Trick, 0, len(tricks))
	for i := range tricks {
		if matchTags(tricks[i].TagIDs, tags, mode) {
			out = append(out, tricks[i])
		}
	}
	return out
}

func matchTags(have, want []string, mode domain.TagMode) bool {
	if mode == domain.TagModeOr {
		for _, tag := range want {
			if slices.Contains(have, tag) {
				return true
			}
		}
		return false
	}

	for _, tag := range want {
		if !slices.Contains(have, tag) {
			return false
		}
	}
	return true
}

// unionIDs — объединение наборов id без повторов; порядок — первое появление.
func unionIDs(sets ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
