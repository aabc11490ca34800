package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-console-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []attendance.Record {
	return []attendance.Record{
		attendance.Record{ID: "A1", EmployeeID: "E1", EmployeeName: "Asha Rao", Department: "Engineering", Date: "2026-10-14", InTime: "09:00", OutTime: "18:00"}.Recompute(),
		attendance.Record{ID: "A2", EmployeeID: "E2", EmployeeName: "Ravi Kumar", Department: "Finance", Date: "2026-10-14", Flag: attendance.FlagAbsent}.Recompute(),
	}
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_EditRecomputesAndDerivesFlag(t *testing.T) {
	svc := NewAttendanceService(memory.NewAttendanceRepository(seed()), 10, "09:30")
	ctx := context.Background()

	rec, err := svc.Edit(ctx, "A2", attendance.EditRequest{InTime: "10:00", OutTime: "12:30"})
	require.NoError(t, err)

	assert.Equal(t, attendance.FlagLate, rec.Flag)
	assert.Equal(t, 150, rec.DurationMinutes)
	assert.Equal(t, "2h 30m", rec.Duration)
	assert.Equal(t, attendance.StatusHalfDay, rec.Status)

	page, err := svc.List(ctx, table.Query{Filters: map[string]string{"flag": "late"}})
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalItems)
	assert.Equal(t, "A2", page.Items[0].ID)
}

func TestAttendanceService_EditOvernightWithExplicitFlag(t *testing.T) {
	svc := NewAttendanceService(memory.NewAttendanceRepository(seed()), 10, "09:30")

	rec, err := svc.Edit(context.Background(), "A1", attendance.EditRequest{InTime: "22:00", OutTime: "06:15", Flag: strPtr("none")})
	require.NoError(t, err)

	assert.Equal(t, attendance.FlagNone, rec.Flag)
	assert.Equal(t, 8*60+15, rec.DurationMinutes)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestAttendanceService_EditRejectsBadInput(t *testing.T) {
	svc := NewAttendanceService(memory.NewAttendanceRepository(seed()), 10, "09:30")
	ctx := context.Background()

	_, err := svc.Edit(ctx, "A1", attendance.EditRequest{InTime: "25:00", OutTime: "18:00", Flag: strPtr("sleepy")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "in_time")
	assert.Contains(t, verrs.ToMap(), "flag")

	_, err = svc.Edit(ctx, "missing", attendance.EditRequest{InTime: "09:00", OutTime: "17:00"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_ExportUsesLabels(t *testing.T) {
	svc := NewAttendanceService(memory.NewAttendanceRepository(seed()), 10, "09:30")
	ctx := context.Background()

	_, err := svc.List(ctx, table.Query{SortBy: "employee_name"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf, spreadsheet.FormatCSV))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"E1", "Asha Rao", "Engineering", "2026-10-14", "09:00", "18:00", "9h 00m", "None", "Present"}, rows[1])
	assert.Equal(t, []string{"E2", "Ravi Kumar", "Finance", "2026-10-14", "-", "-", "-", "Absent", "Absent"}, rows[2])
}
