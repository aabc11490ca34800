package employee

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type employeeServiceImpl struct {
	repo employee.EmployeeRepository
	view *table.View[employee.Employee]
	form *form.Controller[employee.Draft]
}

func NewEmployeeService(repo employee.EmployeeRepository, pageSize int) employee.EmployeeService {
	return &employeeServiceImpl{
		repo: repo,
		view: table.NewView(repo.List, employee.TableSchema, pageSize),
		form: form.NewController(func() employee.Draft {
			return employee.Draft{Status: employee.StatusActive}
		}),
	}
}

func (s *employeeServiceImpl) List(ctx context.Context, q table.Query) (table.Page[employee.Employee], error) {
	return s.view.Page(ctx, q)
}

func (s *employeeServiceImpl) Refresh(ctx context.Context) error {
	return s.view.Data.Refresh(ctx)
}

func (s *employeeServiceImpl) NewDraft() form.Snapshot[employee.Draft] {
	return s.form.New()
}

func (s *employeeServiceImpl) EditDraft(ctx context.Context, id string) (form.Snapshot[employee.Draft], error) {
	e, found, err := s.view.Data.Find(ctx, func(e employee.Employee) bool { return e.ID == id })
	if err != nil {
		return form.Snapshot[employee.Draft]{}, err
	}
	if !found {
		return form.Snapshot[employee.Draft]{}, employee.ErrEmployeeNotFound
	}
	return s.form.Edit(id, employee.DraftFrom(e)), nil
}

func (s *employeeServiceImpl) UpdateDraft(draft employee.Draft) (form.Snapshot[employee.Draft], error) {
	return s.form.Update(draft)
}

func (s *employeeServiceImpl) CancelDraft() {
	s.form.Cancel()
}

func (s *employeeServiceImpl) CurrentDraft() form.Snapshot[employee.Draft] {
	return s.form.Current()
}

func (s *employeeServiceImpl) SubmitDraft(ctx context.Context) (employee.Draft, error) {
	return s.form.Submit(ctx, s.save, s.Refresh)
}

func (s *employeeServiceImpl) save(ctx context.Context, id string, draft employee.Draft) error {
	if id == "" {
		if err := s.repo.Create(ctx, draft); err != nil {
			return err
		}
		slog.Info("Employee created", "email", draft.Email, "department", draft.Department)
		return nil
	}
	if err := s.repo.Update(ctx, id, draft); err != nil {
		return err
	}
	slog.Info("Employee updated", "employee_id", id)
	return nil
}

// Disable marks an active employee inactive upstream and reloads the roster.
func (s *employeeServiceImpl) Disable(ctx context.Context, id string) error {
	e, found, err := s.view.Data.Find(ctx, func(e employee.Employee) bool { return e.ID == id })
	if err != nil {
		return err
	}
	if !found {
		return employee.ErrEmployeeNotFound
	}
	if e.Status == employee.StatusInactive {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.repo.Disable(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee disabled", "employee_id", id)

	if editing, err := s.form.EditingID(); err == nil && editing == id {
		s.form.Cancel()
	}

	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("disabled, but failed to reload the list: %w", err)
	}
	return nil
}

func (s *employeeServiceImpl) Export(ctx context.Context, w io.Writer, format string) error {
	rows, err := s.view.Filtered(ctx)
	if err != nil {
		return err
	}
	return spreadsheet.Write(w, format, "Employees", ExportColumns, rows)
}
