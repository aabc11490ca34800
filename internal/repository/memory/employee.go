package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
)

type disabledRepositoryImpl struct {
	store *store[employee.Employee]
}

// NewDisabledRepository holds the disabled roster. Enabling removes the
// employee from this list.
func NewDisabledRepository(seed []employee.Employee) employee.DisabledRepository {
	return &disabledRepositoryImpl{
		store: newStore(seed, func(e employee.Employee) string { return e.ID }),
	}
}

func (r *disabledRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.store.all(), nil
}

func (r *disabledRepositoryImpl) Enable(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.store.remove(id)
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.Status = employee.StatusActive
	return e, nil
}
