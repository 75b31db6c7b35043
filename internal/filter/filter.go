// Package filter derives the visible slice of a list view from its source
// slice and the current query.
package filter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Order int

const (
	Source Order = iota
	Ascending
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return "Default"
	}
}

// Fields tells Apply where to look in T. Nil selectors disable the matching
// stage.
type Fields[T any] struct {
	// Name is matched by the text query. Names, when set, takes precedence
	// and an item matches if any of its names does.
	Name    func(T) string
	Names   func(T) []string
	Number  func(T) int
	Flag    func(T) bool
	SortKey func(T) int
}

type Query struct {
	Text     string
	Number   *int
	FlagOnly bool
	Order    Order
}

// Apply runs text, number, flag and sort stages in that order. The result is
// always a new slice and items is left untouched.
func Apply[T any](items []T, fields Fields[T], q Query) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}

	if q.Text != "" && (fields.Name != nil || fields.Names != nil) {
		needle := strings.ToLower(q.Text)
		out = lo.Filter(out, func(it T, _ int) bool {
			return matchText(fields, it, needle)
		})
	}
	if q.Number != nil && fields.Number != nil {
		want := *q.Number
		out = lo.Filter(out, func(it T, _ int) bool {
			return fields.Number(it) == want
		})
	}
	if q.FlagOnly && fields.Flag != nil {
		out = lo.Filter(out, func(it T, _ int) bool {
			return fields.Flag(it)
		})
	}
	if q.Order != Source && fields.SortKey != nil {
		slices.SortStableFunc(out, func(a, b T) int {
			ka, kb := fields.SortKey(a), fields.SortKey(b)
			if q.Order == Descending {
				ka, kb = kb, ka
			}
			switch {
			case ka < kb:
				return -1
			case ka > kb:
				return 1
			default:
				return 0
			}
		})
	}
	return out
}

func matchText[T any](fields Fields[T], it T, needle string) bool {
	if fields.Names != nil {
		return lo.SomeBy(fields.Names(it), func(name string) bool {
			return strings.Contains(strings.ToLower(name), needle)
		})
	}
	return strings.Contains(strings.ToLower(fields.Name(it)), needle)
}

// ParseNumber reads a numeric filter box. Blank text means no filter.
func ParseNumber(text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
