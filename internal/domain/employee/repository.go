package employee

import "context"

// EmployeeRepository is the upstream roster.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, draft Draft) error
	Update(ctx context.Context, id string, draft Draft) error
	Disable(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, drafts []Draft) error
}

// DisabledRepository holds the disabled-employee roster shown on its own screen.
type DisabledRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Enable(ctx context.Context, id string) (Employee, error)
}
