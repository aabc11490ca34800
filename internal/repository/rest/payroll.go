package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/payroll"
)

const payrollPath = "/api/payroll"

type payrollRepositoryImpl struct {
	client Client
}

func NewPayrollRepository(client Client) payroll.PayrollRepository {
	return &payrollRepositoryImpl{client: client}
}

type payrollRecord struct {
	payroll.Record
	DocID string `json:"_id"`
}

// List implements payroll.PayrollRepository. Totals are recomputed locally.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	var records []payrollRecord
	if err := r.client.List(ctx, payrollPath, nil, &records, "payrolls", "payroll"); err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}

	result := make([]payroll.Record, 0, len(records))
	for _, rec := range records {
		p := rec.Record
		p.ID = idOf(p.ID, rec.DocID)
		result = append(result, p.Recalculate())
	}
	return result, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, draft payroll.Draft) error {
	if err := r.client.Post(ctx, payrollPath, draft.Recalculated()); err != nil {
		return fmt.Errorf("failed to create payroll: %w", err)
	}
	return nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, id string, draft payroll.Draft) error {
	if err := r.client.Put(ctx, itemPath(payrollPath, id), draft.Recalculated()); err != nil {
		return fmt.Errorf("failed to update payroll: %w", err)
	}
	return nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, itemPath(payrollPath, id)); err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	return nil
}
