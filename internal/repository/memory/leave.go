package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
	"github.com/google/uuid"
)

type leaveRequestRepositoryImpl struct {
	store *store[leave.Request]
}

func NewLeaveRequestRepository(seed []leave.Request) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{
		store: newStore(seed, func(r leave.Request) string { return r.ID }),
	}
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.Request, error) {
	return r.store.all(), nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	req, ok := r.store.get(id)
	if !ok {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

// Create assigns an id when the request has none.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	r.store.add(req)
	return req, nil
}

// Decide stores a decision only if the stored request is still pending.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, req leave.Request) error {
	found, err := r.store.modify(req.ID, func(current leave.Request) (leave.Request, error) {
		if current.Status != leave.StatusPending {
			return current, leave.ErrAlreadyDecided
		}
		return req, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

type leaveCreditRepositoryImpl struct {
	store *store[leave.Credit]
}

func NewLeaveCreditRepository(seed []leave.Credit) leave.CreditRepository {
	return &leaveCreditRepositoryImpl{
		store: newStore(seed, func(c leave.Credit) string { return c.EmployeeID }),
	}
}

func (r *leaveCreditRepositoryImpl) List(ctx context.Context) ([]leave.Credit, error) {
	return r.store.all(), nil
}

func (r *leaveCreditRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (leave.Credit, error) {
	c, ok := r.store.get(employeeID)
	if !ok {
		return leave.Credit{}, leave.ErrLeaveCreditNotFound
	}
	return c, nil
}

func (r *leaveCreditRepositoryImpl) Update(ctx context.Context, credit leave.Credit) error {
	if !r.store.put(credit) {
		return leave.ErrLeaveCreditNotFound
	}
	return nil
}
