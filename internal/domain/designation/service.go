package designation

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

// DesignationService backs the designation screen.
type DesignationService interface {
	List(ctx context.Context, q table.Query) (table.Page[Designation], error)

	NewDraft() form.Snapshot[Draft]
	EditDraft(ctx context.Context, id string) (form.Snapshot[Draft], error)
	UpdateDraft(draft Draft) (form.Snapshot[Draft], error)
	CancelDraft()
	CurrentDraft() form.Snapshot[Draft]
	SubmitDraft(ctx context.Context) (Draft, error)

	Delete(ctx context.Context, id string) error
}
