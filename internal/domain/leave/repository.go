package leave

import "context"

type RequestRepository interface {
	List(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, req Request) (Request, error)
	// Decide writes req only while the stored request is pending, otherwise
	// it fails with ErrAlreadyDecided.
	Decide(ctx context.Context, req Request) error
}

type CreditRepository interface {
	List(ctx context.Context) ([]Credit, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Credit, error)
	Update(ctx context.Context, credit Credit) error
}
