package payroll

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type payrollServiceImpl struct {
	repo payroll.PayrollRepository
	view *table.View[payroll.Record]
	form *form.Controller[payroll.Draft]
}

func NewPayrollService(repo payroll.PayrollRepository, pageSize int) payroll.PayrollService {
	return &payrollServiceImpl{
		repo: repo,
		view: table.NewView(repo.List, payroll.TableSchema, pageSize),
		form: form.NewController(func() payroll.Draft {
			return payroll.Draft{}.Recalculated()
		}),
	}
}

func (s *payrollServiceImpl) List(ctx context.Context, q table.Query) (table.Page[payroll.Record], error) {
	return s.view.Page(ctx, q)
}

func (s *payrollServiceImpl) Summary(ctx context.Context) (payroll.Summary, error) {
	rows, err := s.view.Filtered(ctx)
	if err != nil {
		return payroll.Summary{}, err
	}
	return payroll.Summarize(rows), nil
}

func (s *payrollServiceImpl) NewDraft() form.Snapshot[payroll.Draft] {
	return s.form.New()
}

func (s *payrollServiceImpl) EditDraft(ctx context.Context, id string) (form.Snapshot[payroll.Draft], error) {
	r, found, err := s.view.Data.Find(ctx, func(r payroll.Record) bool { return r.ID == id })
	if err != nil {
		return form.Snapshot[payroll.Draft]{}, err
	}
	if !found {
		return form.Snapshot[payroll.Draft]{}, payroll.ErrPayrollNotFound
	}
	return s.form.Edit(id, payroll.DraftFrom(r)), nil
}

// UpdateDraft recomputes gross, deductions and net on every change.
func (s *payrollServiceImpl) UpdateDraft(draft payroll.Draft) (form.Snapshot[payroll.Draft], error) {
	return s.form.Update(draft.Recalculated())
}

func (s *payrollServiceImpl) CancelDraft() {
	s.form.Cancel()
}

func (s *payrollServiceImpl) CurrentDraft() form.Snapshot[payroll.Draft] {
	return s.form.Current()
}

func (s *payrollServiceImpl) SubmitDraft(ctx context.Context) (payroll.Draft, error) {
	return s.form.Submit(ctx, s.save, s.view.Data.Refresh)
}

func (s *payrollServiceImpl) save(ctx context.Context, id string, draft payroll.Draft) error {
	draft = draft.Recalculated()
	if id == "" {
		if err := s.repo.Create(ctx, draft); err != nil {
			return err
		}
		slog.Info("Payroll created",
			"employee_id", draft.EmployeeID,
			"month", draft.Month,
			"year", draft.Year,
			"net_salary", draft.NetSalary.String(),
		)
		return nil
	}
	if err := s.repo.Update(ctx, id, draft); err != nil {
		return err
	}
	slog.Info("Payroll updated", "payroll_id", id, "net_salary", draft.NetSalary.String())
	return nil
}

func (s *payrollServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Payroll deleted", "payroll_id", id)

	if editing, err := s.form.EditingID(); err == nil && editing == id {
		s.form.Cancel()
	}
	if err := s.view.Data.Refresh(ctx); err != nil {
		return fmt.Errorf("deleted, but failed to reload the list: %w", err)
	}
	return nil
}

func (s *payrollServiceImpl) Export(ctx context.Context, w io.Writer, format string) error {
	rows, err := s.view.Filtered(ctx)
	if err != nil {
		return err
	}
	return spreadsheet.Write(w, format, "Payroll", exportColumns, rows)
}

func money(field func(payroll.Record) payroll.Amount) func(payroll.Record) string {
	return func(r payroll.Record) string { return field(r).StringFixed(2) }
}

var exportColumns = []spreadsheet.Column[payroll.Record]{
	{Header: "Employee ID", Value: func(r payroll.Record) string { return r.EmployeeID }},
	{Header: "Employee Name", Value: func(r payroll.Record) string { return r.EmployeeName }},
	{Header: "Department", Value: func(r payroll.Record) string { return r.Department }},
	{Header: "Period", Value: payroll.Record.Period},
	{Header: "Working Days", Value: func(r payroll.Record) string { return fmt.Sprint(r.WorkingDays) }},
	{Header: "Paid Days", Value: func(r payroll.Record) string { return fmt.Sprint(r.PaidDays) }},
	{Header: "Basic", Value: money(func(r payroll.Record) payroll.Amount { return r.Basic })},
	{Header: "HRA", Value: money(func(r payroll.Record) payroll.Amount { return r.HRA })},
	{Header: "Gross Salary", Value: money(func(r payroll.Record) payroll.Amount { return r.GrossSalary })},
	{Header: "Total Deductions", Value: money(func(r payroll.Record) payroll.Amount { return r.TotalDeductions })},
	{Header: "Net Salary", Value: money(func(r payroll.Record) payroll.Amount { return r.NetSalary })},
}
