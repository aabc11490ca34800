package employee

import (
	"context"
	"io"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

// EmployeeService backs the active-employee screen.
type EmployeeService interface {
	List(ctx context.Context, q table.Query) (table.Page[Employee], error)

	NewDraft() form.Snapshot[Draft]
	EditDraft(ctx context.Context, id string) (form.Snapshot[Draft], error)
	UpdateDraft(draft Draft) (form.Snapshot[Draft], error)
	CancelDraft()
	CurrentDraft() form.Snapshot[Draft]
	SubmitDraft(ctx context.Context) (Draft, error)

	Disable(ctx context.Context, id string) error

	// Refresh re-reads the roster, e.g. after a bulk import.
	Refresh(ctx context.Context) error

	// Export writes the currently filtered roster in format (xlsx or csv).
	Export(ctx context.Context, w io.Writer, format string) error
}

// ImportPreview is a staged upload awaiting confirmation.
type ImportPreview struct {
	Token      string      `json:"token"`
	Filename   string      `json:"filename"`
	Rows       []ImportRow `json:"rows"`
	Violations []Violation `json:"violations"`
	CanConfirm bool        `json:"can_confirm"`
}

// ImportService stages, checks and submits bulk employee uploads.
type ImportService interface {
	Preview(ctx context.Context, filename string, r io.Reader) (ImportPreview, error)
	Confirm(ctx context.Context, token string) (int, error)
	Discard(ctx context.Context, token string) error
}

// DisabledService backs the disabled-employee screen.
type DisabledService interface {
	List(ctx context.Context, q table.Query) (table.Page[Employee], error)
	Enable(ctx context.Context, id string) (Employee, error)
}
