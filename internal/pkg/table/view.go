package table

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// View ties a screen's dataset, stored query and schema together.
type View[T any] struct {
	Data   *Dataset[T]
	State  *State
	Schema Schema[T]
}

func NewView[T any](fetch FetchFunc[T], schema Schema[T], defaultPageSize int) *View[T] {
	return &View[T]{
		Data:   NewDataset(fetch),
		State:  NewState(defaultPageSize),
		Schema: schema,
	}
}

// Page resolves q against the stored state and runs the pipeline over the
// snapshot, re-reading the source first when q.Reload is set.
func (v *View[T]) Page(ctx context.Context, q Query) (Page[T], error) {
	if q.Reload {
		if err := v.Data.Refresh(ctx); err != nil {
			return Page[T]{}, err
		}
	}
	rows, err := v.Data.Rows(ctx)
	if err != nil {
		return Page[T]{}, err
	}

	resolved := v.State.Resolve(q)
	page := Run(rows, v.Schema, resolved)
	v.State.Remember(page.Page)
	return page, nil
}

// Filtered returns every record matching the stored query, sorted, without paging.
// Exports use it so the file mirrors what the screen shows.
func (v *View[T]) Filtered(ctx context.Context) ([]T, error) {
	rows, err := v.Data.Rows(ctx)
	if err != nil {
		return nil, err
	}
	q := v.State.Current()
	return Sort(Filter(rows, v.Schema, q), v.Schema, q.SortBy, q.SortOrder), nil
}

// QueryFromValues reads search, sort, order, page, page_size, refresh and one
// parameter per schema attribute from URL query values.
func QueryFromValues[T any](values url.Values, schema Schema[T]) Query {
	q := Query{
		Search:    strings.TrimSpace(values.Get("search")),
		SortBy:    strings.TrimSpace(values.Get("sort")),
		SortOrder: strings.ToLower(strings.TrimSpace(values.Get("order"))),
		Filters:   make(map[string]string, len(schema.Attributes)),
	}
	if q.SortOrder != SortDesc {
		q.SortOrder = SortAsc
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(values.Get("page_size")); err == nil && size > 0 {
		q.PageSize = min(size, MaxPageSize)
	}
	if reload, err := strconv.ParseBool(values.Get("refresh")); err == nil {
		q.Reload = reload
	}

	for name := range schema.Attributes {
		if value := strings.TrimSpace(values.Get(name)); value != "" {
			q.Filters[name] = value
		}
	}
	return q
}
