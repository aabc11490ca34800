package payroll

import "context"

type PayrollRepository interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, draft Draft) error
	Update(ctx context.Context, id string, draft Draft) error
	Delete(ctx context.Context, id string) error
}
