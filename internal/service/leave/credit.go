package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type creditServiceImpl struct {
	repo leave.CreditRepository
	view *table.View[leave.Credit]
}

func NewCreditService(repo leave.CreditRepository, pageSize int) leave.CreditService {
	return &creditServiceImpl{
		repo: repo,
		view: table.NewView(repo.List, leave.CreditTableSchema, pageSize),
	}
}

func (s *creditServiceImpl) List(ctx context.Context, q table.Query) (table.Page[leave.Credit], error) {
	return s.view.Page(ctx, q)
}

func (s *creditServiceImpl) Update(ctx context.Context, employeeID string, req leave.CreditUpdate) (leave.Credit, error) {
	if err := req.Validate(); err != nil {
		return leave.Credit{}, err
	}

	current, err := s.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.Credit{}, err
	}

	updated := req.Apply(current)
	if err := s.repo.Update(ctx, updated); err != nil {
		return leave.Credit{}, err
	}
	slog.Info("Leave credit updated", "employee_id", employeeID, "remaining", updated.TotalRemaining())

	if err := s.view.Data.Refresh(ctx); err != nil {
		return updated, fmt.Errorf("saved, but failed to reload the list: %w", err)
	}
	return updated, nil
}
