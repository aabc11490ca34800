package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type attendanceServiceImpl struct {
	repo      attendance.AttendanceRepository
	view      *table.View[attendance.Record]
	lateAfter string
}

// NewAttendanceService builds the attendance screen service. lateAfter is the
// HH:MM in time after which an unflagged edit is marked late.
func NewAttendanceService(repo attendance.AttendanceRepository, pageSize int, lateAfter string) attendance.AttendanceService {
	return &attendanceServiceImpl{
		repo:      repo,
		view:      table.NewView(repo.List, attendance.TableSchema, pageSize),
		lateAfter: lateAfter,
	}
}

func (s *attendanceServiceImpl) List(ctx context.Context, q table.Query) (table.Page[attendance.Record], error) {
	return s.view.Page(ctx, q)
}

// Edit applies new clock times, recomputes duration and status, then reloads the list.
func (s *attendanceServiceImpl) Edit(ctx context.Context, id string, req attendance.EditRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return attendance.Record{}, err
	}

	updated := req.Apply(rec, s.lateAfter)
	if err := s.repo.Update(ctx, updated); err != nil {
		return attendance.Record{}, err
	}
	slog.Info("Attendance updated",
		"attendance_id", id,
		"employee_id", updated.EmployeeID,
		"date", updated.Date,
		"duration_minutes", updated.DurationMinutes,
		"status", updated.Status,
	)

	if err := s.view.Data.Refresh(ctx); err != nil {
		return updated, fmt.Errorf("saved, but failed to reload the list: %w", err)
	}
	return updated, nil
}

func (s *attendanceServiceImpl) Export(ctx context.Context, w io.Writer, format string) error {
	rows, err := s.view.Filtered(ctx)
	if err != nil {
		return err
	}
	return spreadsheet.Write(w, format, "Attendance", exportColumns, rows)
}

var exportColumns = []spreadsheet.Column[attendance.Record]{
	{Header: "Employee ID", Value: func(r attendance.Record) string { return r.EmployeeID }},
	{Header: "Employee Name", Value: func(r attendance.Record) string { return r.EmployeeName }},
	{Header: "Department", Value: func(r attendance.Record) string { return r.Department }},
	{Header: "Date", Value: func(r attendance.Record) string { return r.Date }},
	{Header: "In Time", Value: func(r attendance.Record) string { return dash(r.InTime) }},
	{Header: "Out Time", Value: func(r attendance.Record) string { return dash(r.OutTime) }},
	{Header: "Duration", Value: func(r attendance.Record) string { return r.Duration }},
	{Header: "Flag", Value: attendance.Record.FlagLabel},
	{Header: "Status", Value: func(r attendance.Record) string { return string(r.Status) }},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
