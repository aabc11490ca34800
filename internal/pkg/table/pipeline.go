// Package table implements the list pipeline shared by every console screen:
// raw records are searched, narrowed by attribute filters, sorted and cut into
// a fixed-size page.
package table

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	SortAsc  = "asc"
	SortDesc = "desc"

	// FilterAll disables an attribute filter, same as an empty value.
	FilterAll = "all"
)

// Comparator orders two records; it returns a negative number when a sorts before b.
type Comparator[T any] func(a, b T) int

// Schema describes which fields of T the pipeline can search, filter and sort on.
type Schema[T any] struct {
	Search     map[string]func(T) string
	Attributes map[string]func(T) string
	Sorts      map[string]Comparator[T]
}

// ByString compares a string field case-insensitively.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(fold(field(a)), fold(field(b)))
	}
}

// ByTime compares a time field.
func ByTime[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return field(a).Compare(field(b))
	}
}

// ByInt compares an integer field.
func ByInt[T any](field func(T) int) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}
}

// Query is the set of active filters, the sort and the requested page for one screen.
type Query struct {
	Search    string
	Filters   map[string]string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int

	// Reload re-reads the source before paging, as a screen does when it opens.
	Reload bool
}

// Page is one window of the filtered and sorted records.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Empty      bool
}

// fold returns a case-folded copy of s. Casers are stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// activeFilters drops filters that do not narrow anything.
func activeFilters(filters map[string]string) map[string]string {
	active := make(map[string]string, len(filters))
	for name, value := range filters {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, FilterAll) {
			continue
		}
		active[name] = value
	}
	return active
}

// Filter keeps the records matching the query's search text (substring of any
// search field) and every attribute filter (case-insensitive equality).
// Filters naming attributes the schema does not know are ignored.
func Filter[T any](rows []T, schema Schema[T], q Query) []T {
	term := fold(strings.TrimSpace(q.Search))
	filters := activeFilters(q.Filters)

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if term != "" && !matchesSearch(row, schema, term) {
			continue
		}
		if !matchesAttributes(row, schema, filters) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matchesSearch[T any](row T, schema Schema[T], term string) bool {
	for _, field := range schema.Search {
		if strings.Contains(fold(field(row)), term) {
			return true
		}
	}
	return false
}

func matchesAttributes[T any](row T, schema Schema[T], filters map[string]string) bool {
	for name, want := range filters {
		field, ok := schema.Attributes[name]
		if !ok {
			continue
		}
		if fold(strings.TrimSpace(field(row))) != fold(want) {
			return false
		}
	}
	return true
}

// Sort returns a stably sorted copy of rows. An unknown key keeps input order.
func Sort[T any](rows []T, schema Schema[T], key, order string) []T {
	out := slices.Clone(rows)
	compare, ok := schema.Sorts[key]
	if !ok {
		return out
	}
	if strings.EqualFold(order, SortDesc) {
		slices.SortStableFunc(out, func(a, b T) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// TotalPages is ceil(count/size); zero records means zero pages.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return (count + size - 1) / size
}

// ClampPage keeps page inside [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate cuts one page out of rows after clamping the page index.
func Paginate[T any](rows []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(rows)
	pages := TotalPages(total, size)
	page = ClampPage(page, pages)

	start := (page - 1) * size
	end := min(start+size, total)

	items := make([]T, 0, max(end-start, 0))
	if start < total {
		items = append(items, rows[start:end]...)
	}

	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
		Empty:      total == 0,
	}
}

// Run applies filter, sort and paginate in order.
func Run[T any](rows []T, schema Schema[T], q Query) Page[T] {
	filtered := Filter(rows, schema, q)
	sorted := Sort(filtered, schema, q.SortBy, q.SortOrder)
	return Paginate(sorted, q.Page, q.PageSize)
}
