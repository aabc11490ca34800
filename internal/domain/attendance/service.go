package attendance

import (
	"context"
	"io"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type AttendanceService interface {
	List(ctx context.Context, q table.Query) (table.Page[Record], error)
	Edit(ctx context.Context, id string, req EditRequest) (Record, error)
	Export(ctx context.Context, w io.Writer, format string) error
}
