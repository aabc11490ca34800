package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/jonboulle/clockwork"
)

type leaveServiceImpl struct {
	repo  leave.RequestRepository
	view  *table.View[leave.Request]
	form  *form.Controller[leave.ApplicationDraft]
	clock clockwork.Clock
}

func NewLeaveService(repo leave.RequestRepository, pageSize int, clock clockwork.Clock) leave.LeaveService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &leaveServiceImpl{
		repo:  repo,
		view:  table.NewView(repo.List, leave.RequestTableSchema, pageSize),
		form:  form.NewController[leave.ApplicationDraft](nil),
		clock: clock,
	}
}

func (s *leaveServiceImpl) List(ctx context.Context, q table.Query) (table.Page[leave.Request], error) {
	return s.view.Page(ctx, q)
}

func (s *leaveServiceImpl) NewDraft() form.Snapshot[leave.ApplicationDraft] {
	return s.form.New()
}

// UpdateDraft keeps the day count in step with the chosen dates.
func (s *leaveServiceImpl) UpdateDraft(draft leave.ApplicationDraft) (form.Snapshot[leave.ApplicationDraft], error) {
	return s.form.Update(draft.WithDays())
}

func (s *leaveServiceImpl) CancelDraft() {
	s.form.Cancel()
}

func (s *leaveServiceImpl) CurrentDraft() form.Snapshot[leave.ApplicationDraft] {
	return s.form.Current()
}

func (s *leaveServiceImpl) SubmitDraft(ctx context.Context) (leave.ApplicationDraft, error) {
	return s.form.Submit(ctx, s.apply, s.view.Data.Refresh)
}

func (s *leaveServiceImpl) apply(ctx context.Context, _ string, draft leave.ApplicationDraft) error {
	leaveType, _ := leave.ParseType(draft.LeaveType)
	from, _ := validator.ParseDate(draft.From)
	to, _ := validator.ParseDate(draft.To)
	draft = draft.WithDays()

	created, err := s.repo.Create(ctx, leave.Request{
		EmployeeID:   strings.TrimSpace(draft.EmployeeID),
		EmployeeName: strings.TrimSpace(draft.EmployeeName),
		Department:   strings.TrimSpace(draft.Department),
		LeaveType:    leaveType,
		From:         from.Format(validator.DateLayout),
		To:           to.Format(validator.DateLayout),
		Days:         draft.Days,
		Reason:       strings.TrimSpace(draft.Reason),
		Status:       leave.StatusPending,
		AppliedOn:    s.clock.Now().Format(validator.DateLayout),
	})
	if err != nil {
		return err
	}
	slog.Info("Leave application created",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"days", created.Days,
	)
	return nil
}

func (s *leaveServiceImpl) Approve(ctx context.Context, id string, req leave.DecisionRequest) (leave.Request, error) {
	return s.decide(ctx, id, leave.StatusApproved, req)
}

func (s *leaveServiceImpl) Reject(ctx context.Context, id string, req leave.DecisionRequest) (leave.Request, error) {
	return s.decide(ctx, id, leave.StatusRejected, req)
}

// decide moves a pending application to status. Credits are not touched; the
// credit screen reads its own figures from the backend.
func (s *leaveServiceImpl) decide(ctx context.Context, id string, status leave.Status, req leave.DecisionRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.Request{}, err
	}
	if r.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrAlreadyDecided
	}

	r.Status = status
	r.Remark = strings.TrimSpace(req.Remark)
	if err := s.repo.Decide(ctx, r); err != nil {
		return leave.Request{}, err
	}
	slog.Info("Leave application decided", "leave_id", id, "status", status)

	if err := s.view.Data.Refresh(ctx); err != nil {
		return r, fmt.Errorf("saved, but failed to reload the list: %w", err)
	}
	return r, nil
}
