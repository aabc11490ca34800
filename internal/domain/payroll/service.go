package payroll

import (
	"context"
	"io"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

// PayrollService backs the payroll screen.
type PayrollService interface {
	List(ctx context.Context, q table.Query) (table.Page[Record], error)
	// Summary totals the records matching the current filters.
	Summary(ctx context.Context) (Summary, error)

	NewDraft() form.Snapshot[Draft]
	EditDraft(ctx context.Context, id string) (form.Snapshot[Draft], error)
	UpdateDraft(draft Draft) (form.Snapshot[Draft], error)
	CancelDraft()
	CurrentDraft() form.Snapshot[Draft]
	SubmitDraft(ctx context.Context) (Draft, error)

	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer, format string) error
}
