package postgres

import (
	"strconv"
	"strings"

	"github.com/Gunvolt24/trickbook/internal/domain"
)

const trickColumns = `
	t.id, t.user_id, t.title, t.effect, t.secret, t.notes, t.is_public,
	t.difficulty, t.duration, t.reset_time, t.angles, t.created_at,
	ARRAY(SELECT tc.category_id FROM trick_categories tc WHERE tc.trick_id = t.id ORDER BY tc.category_id) AS category_ids,
	ARRAY(SELECT tt.tag_id FROM trick_tags tt WHERE tt.trick_id = t.id ORDER BY tt.tag_id) AS tag_ids`

// trickQueryBuilder — накопление условий WHERE с позиционными аргументами.
type trickQueryBuilder struct {
	where []string
	args  []any
}

func (b *trickQueryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *trickQueryBuilder) add(cond string) { b.where = append(b.where, cond) }

// buildTrickQuery — SELECT трюков по запросу. Фильтр по тегам сюда не входит:
// он применяется после выборки.
func buildTrickQuery(q *domain.TrickQuery) (string, []any) {
	b := &trickQueryBuilder{}
	b.add("t.user_id = " + b.arg(q.UserID))

	if q.TrickIDs != nil {
		b.add("t.id = ANY(" + b.arg(q.TrickIDs) + "::text[])")
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		p := b.arg("%" + escapeLike(search) + "%")
		b.add("(t.title ILIKE " + p + " OR t.effect ILIKE " + p + " OR t.secret ILIKE " + p + " OR t.notes ILIKE " + p + ")")
	}

	f := q.Filters
	if f.IsPublic != nil {
		b.add("t.is_public = " + b.arg(*f.IsPublic))
	}
	if len(f.Difficulties) > 0 {
		b.add("t.difficulty = ANY(" + b.arg(f.Difficulties) + "::int[])")
	}
	if f.DurationMin != nil {
		b.add("t.duration >= " + b.arg(*f.DurationMin))
	}
	if f.DurationMax != nil {
		b.add("t.duration <= " + b.arg(*f.DurationMax))
	}
	if f.ResetTimeMin != nil {
		b.add("t.reset_time >= " + b.arg(*f.ResetTimeMin))
	}
	if f.ResetTimeMax != nil {
		b.add("t.reset_time <= " + b.arg(*f.ResetTimeMax))
	}
	if len(f.Angles) > 0 {
		b.add("t.angles && " + b.arg(f.Angles) + "::text[]")
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(trickColumns)
	sb.WriteString("\nFROM tricks t\nWHERE ")
	sb.WriteString(strings.Join(b.where, "\n  AND "))

	if f.SortOrder == domain.SortLastFirst {
		sb.WriteString("\nORDER BY t.created_at ASC, t.id ASC")
	} else {
		sb.WriteString("\nORDER BY t.created_at DESC, t.id ASC")
	}

	if q.Limit > 0 {
		sb.WriteString("\nLIMIT " + b.arg(q.Limit) + " OFFSET " + b.arg(q.Offset))
	}
	return sb.String(), b.args
}

// escapeLike — экранирование спецсимволов LIKE (\ — escape-символ по умолчанию).
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
