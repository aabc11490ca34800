package table

import (
	"context"
	"slices"
	"sync"
)

// FetchFunc reads the full record set from its source of truth.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Dataset is the last-fetched snapshot of a screen's records.
//
// Mutations never patch the snapshot; callers Refresh after every successful
// write. When two fetches overlap, the one issued last wins even if it
// resolves first.
type Dataset[T any] struct {
	mu      sync.RWMutex
	fetch   FetchFunc[T]
	rows    []T
	loaded  bool
	issued  uint64
	applied uint64
}

func NewDataset[T any](fetch FetchFunc[T]) *Dataset[T] {
	return &Dataset[T]{fetch: fetch}
}

// Refresh re-reads the records from the source.
func (d *Dataset[T]) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.issued++
	ticket := d.issued
	d.mu.Unlock()

	rows, err := d.fetch(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if ticket < d.applied {
		return nil
	}
	d.rows = rows
	d.loaded = true
	d.applied = ticket
	return nil
}

// Rows returns the snapshot, fetching it first if it was never loaded.
func (d *Dataset[T]) Rows(ctx context.Context) ([]T, error) {
	d.mu.RLock()
	if d.loaded {
		rows := slices.Clone(d.rows)
		d.mu.RUnlock()
		return rows, nil
	}
	d.mu.RUnlock()

	if err := d.Refresh(ctx); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.rows), nil
}

// Find returns the first record matching match from the current snapshot.
func (d *Dataset[T]) Find(ctx context.Context, match func(T) bool) (T, bool, error) {
	rows, err := d.Rows(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	for _, row := range rows {
		if match(row) {
			return row, true, nil
		}
	}
	var zero T
	return zero, false, nil
}
