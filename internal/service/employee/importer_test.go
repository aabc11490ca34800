package employee

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/storage"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var importHeader = []any{"Name", "Email", "Phone", "Date of Birth", "Gender", "Department", "Branch", "Position"}

func upload(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]any{importHeader}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

type importFixture struct {
	repo    *fakeRepo
	storage *storage.LocalStorage
	clock   *clockwork.FakeClock
	svc     *importServiceImpl
}

func newImportFixture(t *testing.T) importFixture {
	t.Helper()
	fs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repo := roster()
	clock := clockwork.NewFakeClockAt(time.Now())
	return importFixture{
		repo:    repo,
		storage: fs,
		clock:   clock,
		svc:     NewImportService(repo, NewEmployeeService(repo, 10), fs, clock),
	}
}

func (f importFixture) staged(t *testing.T) []storage.Object {
	t.Helper()
	objects, err := f.storage.List(context.Background(), stageDir)
	require.NoError(t, err)
	return objects
}

func TestImportService_ValidFileStagesAndConfirms(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	buf := upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
		[]any{"Dev Anand Mehta", "dev@corp.in", "9876501234", "1990-03-20", "Male", "Finance", "Pune", "Analyst"},
	)

	preview, err := f.svc.Preview(ctx, "employees.xlsx", buf)
	require.NoError(t, err)
	require.True(t, preview.CanConfirm)
	require.NotEmpty(t, preview.Token)
	assert.Empty(t, preview.Violations)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, 1, preview.Rows[0].Row)
	assert.Equal(t, "1994-07-01", preview.Rows[0].DateOfBirth)
	assert.Len(t, f.staged(t), 1)

	count, err := f.svc.Confirm(ctx, preview.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, f.repo.bulk, 1)
	drafts := f.repo.bulk[0]
	assert.Equal(t, "Dev", drafts[1].FirstName)
	assert.Equal(t, "Anand", drafts[1].MiddleName)
	assert.Equal(t, "Mehta", drafts[1].LastName)
	assert.Equal(t, "Analyst", drafts[1].Designation)
	assert.Equal(t, employee.StatusActive, drafts[1].Status)

	assert.Empty(t, f.staged(t), "confirmed upload is removed")
	assert.Equal(t, 1, f.repo.calls(), "roster reloaded after import")

	_, err = f.svc.Confirm(ctx, preview.Token)
	assert.ErrorIs(t, err, employee.ErrImportNotFound)
}

func TestImportService_ViolationsBlockConfirmation(t *testing.T) {
	f := newImportFixture(t)

	buf := upload(t,
		[]any{"Kiran Shah", "kiran-at-corp", "12345", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
		[]any{"", "dev@corp.in", "9876501234", "1990-03-20", "Male", "Finance", "Pune", ""},
	)

	preview, err := f.svc.Preview(context.Background(), "employees.xlsx", buf)
	require.NoError(t, err)

	assert.False(t, preview.CanConfirm)
	assert.Empty(t, preview.Token)
	assert.Empty(t, f.staged(t))

	var messages []string
	for _, v := range preview.Violations {
		messages = append(messages, v.String())
	}
	assert.Equal(t, []string{
		"Row 1: Email is invalid",
		"Row 1: Phone must be exactly 10 digits",
		"Row 2: Name is required",
		"Row 2: Position is required",
	}, messages)
	assert.Empty(t, f.repo.bulk)
}

func TestImportService_RowNumbersFollowTheSheet(t *testing.T) {
	f := newImportFixture(t)

	buf := upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
		[]any{},
		[]any{"", "dev@corp.in", "9876501234", "1990-03-20", "Male", "Finance", "Pune", "Analyst"},
	)

	preview, err := f.svc.Preview(context.Background(), "employees.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, 3, preview.Rows[1].Row)
	require.Len(t, preview.Violations, 1)
	assert.Equal(t, "Row 3: Name is required", preview.Violations[0].String())
}

func TestImportService_RejectsBadUploads(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	_, err := f.svc.Preview(ctx, "employees.csv", strings.NewReader("a,b"))
	assert.ErrorIs(t, err, spreadsheet.ErrUnsupportedType)

	_, err = f.svc.Preview(ctx, "employees.xlsx", strings.NewReader("garbage"))
	assert.ErrorIs(t, err, spreadsheet.ErrMalformed)

	_, err = f.svc.Preview(ctx, "employees.xlsx", upload(t))
	assert.ErrorIs(t, err, employee.ErrImportEmpty)
}

func TestImportService_BackendFailureKeepsStage(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()
	f.repo.bulkErr = errors.New("upstream exploded")

	preview, err := f.svc.Preview(ctx, "employees.xlsx", upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
	))
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, preview.Token)
	require.Error(t, err)
	assert.Len(t, f.staged(t), 1, "a failed submit can be retried")

	f.repo.bulkErr = nil
	count, err := f.svc.Confirm(ctx, preview.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportService_ConcurrentConfirmSubmitsOnce(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "employees.xlsx", upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
	))
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.repo.bulkHook = func() {
		close(entered)
		<-release
	}

	type result struct {
		count int
		err   error
	}
	done := make(chan result, 1)
	go func() {
		count, err := f.svc.Confirm(ctx, preview.Token)
		done <- result{count, err}
	}()
	<-entered

	_, err = f.svc.Confirm(ctx, preview.Token)
	assert.ErrorIs(t, err, employee.ErrImportInProgress)
	assert.ErrorIs(t, f.svc.Discard(ctx, preview.Token), employee.ErrImportInProgress)

	close(release)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, 1, first.count)
	assert.Len(t, f.repo.bulk, 1, "rows are submitted upstream once")

	_, err = f.svc.Confirm(ctx, preview.Token)
	assert.ErrorIs(t, err, employee.ErrImportNotFound)
}

func TestImportService_DiscardAndInvalidToken(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, "employees.xlsx", upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
	))
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, preview.Token))
	assert.Empty(t, f.staged(t))

	_, err = f.svc.Confirm(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, employee.ErrImportNotFound)
	assert.ErrorIs(t, f.svc.Discard(ctx, "nope"), employee.ErrImportNotFound)
}

func TestImportService_PurgeStaleUsesClock(t *testing.T) {
	f := newImportFixture(t)
	ctx := context.Background()

	_, err := f.svc.Preview(ctx, "employees.xlsx", upload(t,
		[]any{"Kiran Shah", "kiran@corp.in", "9988776655", "01/07/1994", "Female", "Sales", "Delhi", "Executive"},
	))
	require.NoError(t, err)

	purged, err := f.svc.PurgeStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, purged)

	f.clock.Advance(2 * time.Hour)
	purged, err = f.svc.PurgeStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Empty(t, f.staged(t))
}
