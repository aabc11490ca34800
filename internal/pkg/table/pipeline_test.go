package table

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID         int
	Name       string
	Email      string
	Department string
	Branch     string
}

var rowSchema = Schema[row]{
	Search: map[string]func(row) string{
		"name":       func(r row) string { return r.Name },
		"email":      func(r row) string { return r.Email },
		"department": func(r row) string { return r.Department },
	},
	Attributes: map[string]func(row) string{
		"department": func(r row) string { return r.Department },
		"branch":     func(r row) string { return r.Branch },
	},
	Sorts: map[string]Comparator[row]{
		"name": ByString(func(r row) string { return r.Name }),
		"id":   ByInt(func(r row) int { return r.ID }),
	},
}

func sampleRows() []row {
	return []row{
		{1, "Asha", "asha@corp.in", "Engineering", "Pune"},
		{2, "Ravi", "ravi@corp.in", "Sales", "Mumbai"},
		{3, "Meera", "meera@ENG.corp.in", "Finance", "Pune"},
		{4, "Karan", "karan@corp.in", "engineering", "Mumbai"},
		{5, "Divya", "divya@corp.in", "HR", "Delhi"},
	}
}

func ids(rows []row) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter_SearchIsCaseInsensitiveOrAcrossFields(t *testing.T) {
	got := Filter(sampleRows(), rowSchema, Query{Search: "eng"})

	assert.Equal(t, []int{1, 3, 4}, ids(got))
}

func TestFilter_AttributeFiltersAreAnded(t *testing.T) {
	got := Filter(sampleRows(), rowSchema, Query{Filters: map[string]string{
		"department": "ENGINEERING",
		"branch":     "mumbai",
	}})

	assert.Equal(t, []int{4}, ids(got))
}

func TestFilter_AllAndEmptyAreInactive(t *testing.T) {
	got := Filter(sampleRows(), rowSchema, Query{Filters: map[string]string{
		"department": "all",
		"branch":     "  ",
		"unknown":    "x",
	}})

	assert.Len(t, got, 5)
}

func TestFilter_Idempotent(t *testing.T) {
	queries := []Query{
		{Search: "a"},
		{Search: "corp", Filters: map[string]string{"branch": "Pune"}},
		{Filters: map[string]string{"department": "Sales"}},
		{Search: "nothing-matches"},
	}
	for _, q := range queries {
		once := Filter(sampleRows(), rowSchema, q)
		twice := Filter(once, rowSchema, q)
		assert.Equal(t, once, twice, "query %+v", q)
	}
}

func TestSort_StableAndDirectional(t *testing.T) {
	rows := []row{
		{1, "b", "", "", ""},
		{2, "a", "", "", ""},
		{3, "B", "", "", ""},
		{4, "a", "", "", ""},
	}

	asc := Sort(rows, rowSchema, "name", SortAsc)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(asc))

	desc := Sort(rows, rowSchema, "name", SortDesc)
	assert.Equal(t, []int{1, 3, 2, 4}, ids(desc))

	unknown := Sort(rows, rowSchema, "salary", SortAsc)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(unknown))

	assert.Equal(t, []int{1, 2, 3, 4}, ids(rows), "input must not be reordered")
}

func TestPaginate_PagesReproduceInput(t *testing.T) {
	for n := 0; n <= 23; n++ {
		rows := make([]row, n)
		for i := range rows {
			rows[i] = row{ID: i}
		}
		for size := 1; size <= 7; size++ {
			first := Paginate(rows, 1, size)
			wantPages := (n + size - 1) / size
			require.Equal(t, wantPages, first.TotalPages, "n=%d size=%d", n, size)

			var all []row
			for p := 1; p <= first.TotalPages; p++ {
				all = append(all, Paginate(rows, p, size).Items...)
			}
			if n == 0 {
				assert.Empty(t, all)
				assert.True(t, first.Empty)
				continue
			}
			assert.Equal(t, rows, all, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_ClampsPage(t *testing.T) {
	rows := sampleRows()

	high := Paginate(rows, 9, 2)
	assert.Equal(t, 3, high.Page)
	assert.Equal(t, []int{5}, ids(high.Items))

	low := Paginate(rows, -4, 2)
	assert.Equal(t, 1, low.Page)

	empty := Paginate([]row{}, 3, 2)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 0, empty.TotalPages)
	assert.True(t, empty.Empty)
	assert.NotNil(t, empty.Items)
}

func TestPaginate_DefaultsPageSize(t *testing.T) {
	page := Paginate(sampleRows(), 1, 0)
	assert.Equal(t, DefaultPageSize, page.PageSize)
}

func TestState_FilterChangeResetsPage(t *testing.T) {
	s := NewState(2)

	q := s.Resolve(Query{Page: 3})
	assert.Equal(t, 3, q.Page)

	q = s.Resolve(Query{Page: 3, Search: "eng"})
	assert.Equal(t, 1, q.Page, "search change resets to page 1")

	q = s.Resolve(Query{Page: 2, Search: "ENG"})
	assert.Equal(t, 2, q.Page, "same search keeps requested page")

	q = s.Resolve(Query{Page: 2, Search: "ENG", Filters: map[string]string{"branch": "Pune"}})
	assert.Equal(t, 1, q.Page, "filter change resets to page 1")
}

func TestState_PageSizeChangeKeepsPage(t *testing.T) {
	s := NewState(10)
	s.Resolve(Query{Page: 2})

	q := s.Resolve(Query{Page: 2, PageSize: 5})
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.PageSize)

	q = s.Resolve(Query{})
	assert.Equal(t, 5, q.PageSize, "page size sticks")
	assert.Equal(t, 2, q.Page, "page sticks")
}

func TestView_ClampsAfterDatasetShrinks(t *testing.T) {
	ctx := context.Background()
	current := sampleRows()
	v := NewView(func(context.Context) ([]row, error) { return current, nil }, rowSchema, 2)

	page, err := v.Page(ctx, Query{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)

	current = current[:2]
	require.NoError(t, v.Data.Refresh(ctx))

	page, err = v.Page(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, v.State.Current().Page)
}

func TestView_ReloadRereadsSource(t *testing.T) {
	ctx := context.Background()
	current := sampleRows()[:1]
	fetches := 0
	v := NewView(func(context.Context) ([]row, error) {
		fetches++
		return current, nil
	}, rowSchema, 10)

	page, err := v.Page(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems)

	current = sampleRows()[:2]

	page, err = v.Page(ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems, "paging works on the loaded snapshot")

	page, err = v.Page(ctx, Query{Reload: true})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, 2, fetches)
}

func TestView_Filtered(t *testing.T) {
	ctx := context.Background()
	v := NewView(func(context.Context) ([]row, error) { return sampleRows(), nil }, rowSchema, 2)

	_, err := v.Page(ctx, Query{Search: "eng", SortBy: "name", SortOrder: SortDesc})
	require.NoError(t, err)

	rows, err := v.Filtered(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1}, ids(rows))
}

func TestDataset_LazyLoadAndError(t *testing.T) {
	ctx := context.Background()
	calls := 0
	d := NewDataset(func(context.Context) ([]row, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return sampleRows(), nil
	})

	_, err := d.Rows(ctx)
	require.Error(t, err)

	rows, err := d.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 5)

	_, err = d.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "loaded snapshot is reused")
}

func TestDataset_StaleFetchDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	var mu sync.Mutex
	call := 0

	d := NewDataset(func(context.Context) ([]row, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			<-release
			return []row{{ID: 100}}, nil
		}
		return []row{{ID: 200}}, nil
	})

	done := make(chan error)
	go func() { done <- d.Refresh(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return call == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, d.Refresh(ctx))
	close(release)
	require.NoError(t, <-done)

	rows, err := d.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{200}, ids(rows))
}

func TestDataset_Find(t *testing.T) {
	d := NewDataset(func(context.Context) ([]row, error) { return sampleRows(), nil })

	r, ok, err := d.Find(context.Background(), func(r row) bool { return r.Name == "Divya" })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, r.ID)

	_, ok, err = d.Find(context.Background(), func(r row) bool { return r.ID == 99 })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryFromValues(t *testing.T) {
	values := url.Values{}
	values.Set("search", "  eng ")
	values.Set("sort", "name")
	values.Set("order", "DESC")
	values.Set("page", "2")
	values.Set("page_size", fmt.Sprint(MaxPageSize+50))
	values.Set("department", "HR")
	values.Set("salary", "1")
	values.Set("refresh", "1")

	q := QueryFromValues(values, rowSchema)
	assert.Equal(t, "eng", q.Search)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, SortDesc, q.SortOrder)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, MaxPageSize, q.PageSize)
	assert.Equal(t, map[string]string{"department": "HR"}, q.Filters)
	assert.True(t, q.Reload)

	empty := QueryFromValues(url.Values{"page": {"abc"}}, rowSchema)
	assert.Equal(t, 0, empty.Page)
	assert.Equal(t, SortAsc, empty.SortOrder)
	assert.False(t, empty.Reload)
}
