package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
}
