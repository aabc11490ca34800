package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

// LeaveService backs the leave application screen.
type LeaveService interface {
	List(ctx context.Context, q table.Query) (table.Page[Request], error)

	NewDraft() form.Snapshot[ApplicationDraft]
	UpdateDraft(draft ApplicationDraft) (form.Snapshot[ApplicationDraft], error)
	CancelDraft()
	CurrentDraft() form.Snapshot[ApplicationDraft]
	SubmitDraft(ctx context.Context) (ApplicationDraft, error)

	Approve(ctx context.Context, id string, req DecisionRequest) (Request, error)
	Reject(ctx context.Context, id string, req DecisionRequest) (Request, error)
}

// CreditService backs the leave credit screen.
type CreditService interface {
	List(ctx context.Context, q table.Query) (table.Page[Credit], error)
	Update(ctx context.Context, employeeID string, req CreditUpdate) (Credit, error)
}
