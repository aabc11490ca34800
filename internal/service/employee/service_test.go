package employee

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu        sync.Mutex
	items     []employee.Employee
	listCalls int
	bulk      [][]employee.Draft
	bulkErr   error
	bulkHook  func()
	created   []employee.Draft
	disabled  []string
}

func (r *fakeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	return append([]employee.Employee(nil), r.items...), nil
}

func (r *fakeRepo) Create(ctx context.Context, d employee.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, d)
	r.items = append(r.items, employee.Employee{
		ID:         "new" + strconv.Itoa(len(r.created)),
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Department: d.Department,
		Status:     employee.StatusActive,
	})
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, id string, d employee.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Department = d.Department
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *fakeRepo) Disable(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled = append(r.disabled, id)
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *fakeRepo) BulkCreate(ctx context.Context, drafts []employee.Draft) error {
	if r.bulkHook != nil {
		r.bulkHook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bulkErr != nil {
		return r.bulkErr
	}
	r.bulk = append(r.bulk, drafts)
	return nil
}

func (r *fakeRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

func roster() *fakeRepo {
	return &fakeRepo{items: []employee.Employee{
		{ID: "E1", FirstName: "Asha", LastName: "Rao", Email: "asha@corp.in", Phone: "9876543210", Department: "Engineering", Branch: "Pune", Designation: "Software Engineer", Status: employee.StatusActive},
		{ID: "E2", FirstName: "Ravi", LastName: "Kumar", Email: "ravi@corp.in", Phone: "9123456780", Department: "Finance", Branch: "Mumbai", Designation: "Accountant", Status: employee.StatusActive},
		{ID: "E3", FirstName: "Meera", LastName: "Iyer", Email: "meera@corp.in", Phone: "9012345678", Department: "Engineering", Branch: "Mumbai", Designation: "Team Lead", Status: employee.StatusActive},
	}}
}

func validDraft() employee.Draft {
	return employee.Draft{
		FirstName:   "Kiran",
		LastName:    "Shah",
		Email:       "kiran@corp.in",
		Phone:       "9988776655",
		Gender:      "Female",
		Department:  "Sales",
		Branch:      "Delhi",
		Designation: "Executive",
		DateOfBirth: "1994-07-01",
	}
}

func TestEmployeeService_SearchMatchesDepartmentCaseInsensitively(t *testing.T) {
	svc := NewEmployeeService(roster(), 10)

	page, err := svc.List(context.Background(), table.Query{Search: "eng", SortBy: "name"})
	require.NoError(t, err)

	require.Equal(t, 2, page.TotalItems)
	assert.Equal(t, "Asha Rao", page.Items[0].FullName())
	assert.Equal(t, "Meera Iyer", page.Items[1].FullName())
}

func TestEmployeeService_SubmitCreatesAndRefetches(t *testing.T) {
	repo := roster()
	svc := NewEmployeeService(repo, 10)
	ctx := context.Background()

	_, err := svc.List(ctx, table.Query{})
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls())

	snap := svc.NewDraft()
	assert.Equal(t, employee.StatusActive, snap.Draft.Status)

	_, err = svc.UpdateDraft(validDraft())
	require.NoError(t, err)
	_, err = svc.SubmitDraft(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls(), "list is re-fetched after a successful save")
	page, err := svc.List(ctx, table.Query{Search: "kiran"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems)
}

func TestEmployeeService_InvalidDraftReportsEveryField(t *testing.T) {
	repo := roster()
	svc := NewEmployeeService(repo, 10)

	svc.NewDraft()
	draft := validDraft()
	draft.Email = "not-an-email"
	draft.Phone = "12345"
	_, err := svc.UpdateDraft(draft)
	require.NoError(t, err)

	_, err = svc.SubmitDraft(context.Background())
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Empty(t, repo.created)
}

func TestEmployeeService_DisableRefetchesAndRejectsUnknown(t *testing.T) {
	repo := roster()
	svc := NewEmployeeService(repo, 10)
	ctx := context.Background()

	require.NoError(t, svc.Disable(ctx, "E2"))
	assert.Equal(t, []string{"E2"}, repo.disabled)

	page, err := svc.List(ctx, table.Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalItems)

	err = svc.Disable(ctx, "E2")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_EditUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(roster(), 10)

	_, err := svc.EditDraft(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ExportFollowsCurrentFilter(t *testing.T) {
	svc := NewEmployeeService(roster(), 10)
	ctx := context.Background()

	_, err := svc.List(ctx, table.Query{Filters: map[string]string{"branch": "mumbai"}, SortBy: "name"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf, spreadsheet.FormatCSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "Meera Iyer", rows[1][1])
	assert.Equal(t, "Ravi Kumar", rows[2][1])
}

type fakeDisabledRepo struct {
	items     []employee.Employee
	listCalls int
}

func (r *fakeDisabledRepo) List(ctx context.Context) ([]employee.Employee, error) {
	r.listCalls++
	return append([]employee.Employee(nil), r.items...), nil
}

func (r *fakeDisabledRepo) Enable(ctx context.Context, id string) (employee.Employee, error) {
	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			e.Status = employee.StatusActive
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func TestDisabledService_EnableRemovesFromList(t *testing.T) {
	repo := &fakeDisabledRepo{items: []employee.Employee{
		{ID: "D1", FirstName: "Old", LastName: "Hand", Status: employee.StatusInactive},
		{ID: "D2", FirstName: "Left", LastName: "Early", Status: employee.StatusInactive},
	}}
	svc := NewDisabledService(repo, 10)
	ctx := context.Background()

	e, err := svc.Enable(ctx, "D1")
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, e.Status)

	page, err := svc.List(ctx, table.Query{})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalItems)
	assert.Equal(t, "D2", page.Items[0].ID)

	_, err = svc.Enable(ctx, "D1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
