package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type disabledServiceImpl struct {
	repo employee.DisabledRepository
	view *table.View[employee.Employee]
}

func NewDisabledService(repo employee.DisabledRepository, pageSize int) employee.DisabledService {
	return &disabledServiceImpl{
		repo: repo,
		view: table.NewView(repo.List, employee.TableSchema, pageSize),
	}
}

func (s *disabledServiceImpl) List(ctx context.Context, q table.Query) (table.Page[employee.Employee], error) {
	return s.view.Page(ctx, q)
}

// Enable takes the employee off the disabled list.
func (s *disabledServiceImpl) Enable(ctx context.Context, id string) (employee.Employee, error) {
	e, err := s.repo.Enable(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	slog.Info("Employee enabled", "employee_id", id)

	if err := s.view.Data.Refresh(ctx); err != nil {
		return e, fmt.Errorf("enabled, but failed to reload the list: %w", err)
	}
	return e, nil
}
