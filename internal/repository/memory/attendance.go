package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *store[attendance.Record]
}

func NewAttendanceRepository(seed []attendance.Record) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		store: newStore(seed, func(r attendance.Record) string { return r.ID }),
	}
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	return r.store.all(), nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, ok := r.store.get(id)
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	if !r.store.put(rec) {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
