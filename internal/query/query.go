// Package query composes parameterized SELECT statements from optional filters.
//
// Fragments are written with '?' placeholders. Build renumbers them into
// PostgreSQL positional parameters so that a filter and its bound values can
// never drift apart. A filter whose value is absent contributes nothing to
// the statement.
package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Builder accumulates the optional WHERE conditions of a SELECT statement.
type Builder struct {
	base    string
	conds   []string
	args    []any
	groupBy string
	orderBy string
}

// New starts a statement from base, a SELECT ... FROM ... without WHERE clause.
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where adds a condition unconditionally. The number of '?' placeholders in
// fragment must match len(args).
func (b *Builder) Where(fragment string, args ...any) *Builder {
	if n := strings.Count(fragment, "?"); n != len(args) {
		panic(fmt.Sprintf("query: fragment %q has %d placeholders but %d args", fragment, n, len(args)))
	}
	b.conds = append(b.conds, fragment)
	b.args = append(b.args, args...)
	return b
}

// WhereIf adds the condition only when ok is true.
func (b *Builder) WhereIf(ok bool, fragment string, args ...any) *Builder {
	if !ok {
		return b
	}
	return b.Where(fragment, args...)
}

// Search adds a case-insensitive substring match of term against any of the
// given column expressions. Blank terms are ignored. LIKE wildcards typed by
// the user are matched literally.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}

	pattern := "%" + EscapeLike(term) + "%"
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + `) LIKE LOWER(?) ESCAPE '\'`
		args[i] = pattern
	}
	return b.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// Equal adds "column = value" when value is present. Empty strings and nil
// pointers count as absent.
func (b *Builder) Equal(column string, value any) *Builder {
	v, ok := present(value)
	if !ok {
		return b
	}
	return b.Where(column+" = ?", v)
}

// Between adds inclusive lower and upper bounds on column, each only when set.
func (b *Builder) Between(column string, from, to *time.Time) *Builder {
	if from != nil {
		b.Where(column+" >= ?", *from)
	}
	if to != nil {
		b.Where(column+" <= ?", *to)
	}
	return b
}

// Flag filters a nullable boolean column by "yes" or "no". "no" matches both
// FALSE and NULL. Any other choice leaves the statement unchanged.
func (b *Builder) Flag(column, choice string) *Builder {
	switch choice {
	case "yes":
		return b.Where(column + " = TRUE")
	case "no":
		return b.Where("(" + column + " = FALSE OR " + column + " IS NULL)")
	default:
		return b
	}
}

// GroupBy sets the GROUP BY clause.
func (b *Builder) GroupBy(columns string) *Builder {
	b.groupBy = columns
	return b
}

// OrderBy sets the ORDER BY clause.
func (b *Builder) OrderBy(columns string) *Builder {
	b.orderBy = columns
	return b
}

// Build returns the final statement and its positional arguments.
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(b.base)

	n := 0
	for i, cond := range b.conds {
		if i == 0 {
			sb.WriteString("\nWHERE ")
		} else {
			sb.WriteString("\n  AND ")
		}
		for _, r := range cond {
			if r == '?' {
				n++
				sb.WriteByte('$')
				sb.WriteString(strconv.Itoa(n))
				continue
			}
			sb.WriteRune(r)
		}
	}

	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(b.orderBy)
	}

	args := make([]any, len(b.args))
	copy(args, b.args)
	return sb.String(), args
}

// EscapeLike escapes the LIKE metacharacters of s using backslash.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func present(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case *string:
		if v == nil {
			return nil, false
		}
		return present(*v)
	case *int64:
		if v == nil {
			return nil, false
		}
		return *v, true
	case *bool:
		if v == nil {
			return nil, false
		}
		return *v, true
	case *time.Time:
		if v == nil {
			return nil, false
		}
		return *v, true
	default:
		return v, true
	}
}
