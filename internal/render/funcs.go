package render

import (
	"html/template"
	"strconv"
	"time"

	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/status"
)

// Funcs returns the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"text":     Text,
		"date":     Date,
		"num":      Num,
		"money":    Money,
		"idval":    IDValue,
		"selected": Selected,
		"choices":  Choices,
		"state":    status.Label,
		"stateCSS": StateClass,
		"workLabel": func(s models.WorkStatus) string {
			return s.Label()
		},
	}
}

// Text renders a string or optional string, nil as empty.
func Text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

// Date renders a date or optional date as YYYY-MM-DD.
func Date(v any) string {
	switch d := v.(type) {
	case time.Time:
		if !d.IsZero() {
			return d.Format("2006-01-02")
		}
	case *time.Time:
		if d != nil {
			return d.Format("2006-01-02")
		}
	}
	return ""
}

// Num renders an optional number without trailing zeros.
func Num(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Money renders an amount with two decimals.
func Money(v any) string {
	switch f := v.(type) {
	case float64:
		return strconv.FormatFloat(f, 'f', 2, 64)
	case *float64:
		if f != nil {
			return strconv.FormatFloat(*f, 'f', 2, 64)
		}
	}
	return ""
}

// IDValue renders an optional id for a form field.
func IDValue(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// Selected reports whether an option id matches the current value, which may
// be an id, an optional id or a raw query string.
func Selected(current any, id int64) bool {
	switch c := current.(type) {
	case int64:
		return c == id
	case *int64:
		return c != nil && *c == id
	case string:
		return c == strconv.FormatInt(id, 10)
	}
	return false
}

// Choice is a dropdown's options with the current value, passed to the
// shared "options" template.
type Choice struct {
	Options []models.Option
	Current any
}

// Choices pairs options with the current value.
func Choices(options []models.Option, current any) Choice {
	return Choice{Options: options, Current: current}
}

// StateClass maps an observed or latest state to its badge style.
func StateClass(state any) string {
	var s models.ObservedState
	switch v := state.(type) {
	case models.ObservedState:
		s = v
	case string:
		s = models.ObservedState(v)
	case *string:
		if v == nil {
			return "state-none"
		}
		s = models.ObservedState(*v)
	default:
		return "state-none"
	}

	switch {
	case s == models.StateGood:
		return "state-good"
	case s == models.StateAverage:
		return "state-average"
	case s.Urgent():
		return "state-urgent"
	}
	return "state-other"
}
