package designation

import "context"

// DesignationRepository is the source of truth for designations.
type DesignationRepository interface {
	List(ctx context.Context) ([]Designation, error)
	Create(ctx context.Context, draft Draft) error
	Update(ctx context.Context, id string, draft Draft) error
	Delete(ctx context.Context, id string) error
}
