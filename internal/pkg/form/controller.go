// Package form holds the draft lifecycle shared by every CRUD screen: a
// working copy kept apart from the list, validated locally before it is sent.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoDraft          = errors.New("no form is open")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNotEditing       = errors.New("form is not editing a record")
)

// Draft is a form payload that can check itself before submission.
type Draft interface {
	Validate() error
}

type Mode string

const (
	ModeClosed Mode = "closed"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Snapshot is the form as shown to the operator.
type Snapshot[T Draft] struct {
	Mode       Mode   `json:"mode"`
	ID         string `json:"id,omitempty"`
	Draft      T      `json:"draft"`
	Submitting bool   `json:"submitting"`
}

// SaveFunc persists a draft. id is empty when creating.
type SaveFunc[T Draft] func(ctx context.Context, id string, draft T) error

// RefreshFunc re-reads the list after a successful save.
type RefreshFunc func(ctx context.Context) error

type Controller[T Draft] struct {
	mu         sync.Mutex
	blank      func() T
	mode       Mode
	id         string
	draft      T
	submitting bool

	// gen changes whenever the operator touches the form.
	gen uint64
}

// NewController returns a closed form. blank builds the payload for New; nil
// means the zero value of T.
func NewController[T Draft](blank func() T) *Controller[T] {
	if blank == nil {
		blank = func() T {
			var zero T
			return zero
		}
	}
	return &Controller[T]{blank: blank, mode: ModeClosed}
}

// New opens an empty create form, replacing any open draft.
func (c *Controller[T]) New() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeCreate
	c.id = ""
	c.draft = c.blank()
	c.gen++
	return c.snapshot()
}

// Edit opens the form on an existing record, seeded with its current values.
func (c *Controller[T]) Edit(id string, seed T) Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeEdit
	c.id = id
	c.draft = seed
	c.gen++
	return c.snapshot()
}

// Update replaces the working copy. The list is not touched.
func (c *Controller[T]) Update(draft T) (Snapshot[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeClosed {
		return Snapshot[T]{Mode: ModeClosed}, ErrNoDraft
	}
	c.draft = draft
	c.gen++
	return c.snapshot(), nil
}

// Cancel discards the draft.
func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.gen++
}

func (c *Controller[T]) Current() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// EditingID returns the id of the record being edited.
func (c *Controller[T]) EditingID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeEdit {
		return "", ErrNotEditing
	}
	return c.id, nil
}

// Submit validates the draft, saves it and then re-reads the list. The draft
// survives a validation or save failure so the operator can correct it. A form
// opened or changed while the save was in flight is left as it is.
func (c *Controller[T]) Submit(ctx context.Context, save SaveFunc[T], refresh RefreshFunc) (T, error) {
	var zero T

	c.mu.Lock()
	if c.mode == ModeClosed {
		c.mu.Unlock()
		return zero, ErrNoDraft
	}
	if c.submitting {
		c.mu.Unlock()
		return zero, ErrSubmitInProgress
	}
	draft, id, gen := c.draft, c.id, c.gen
	if err := draft.Validate(); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	c.submitting = true
	c.mu.Unlock()

	err := save(ctx, id, draft)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.mu.Unlock()
		return zero, err
	}
	if c.gen == gen {
		c.reset()
	}
	c.mu.Unlock()

	if refresh != nil {
		if err := refresh(ctx); err != nil {
			return draft, fmt.Errorf("saved, but failed to reload the list: %w", err)
		}
	}
	return draft, nil
}

func (c *Controller[T]) reset() {
	c.mode = ModeClosed
	c.id = ""
	var zero T
	c.draft = zero
}

func (c *Controller[T]) snapshot() Snapshot[T] {
	return Snapshot[T]{
		Mode:       c.mode,
		ID:         c.id,
		Draft:      c.draft,
		Submitting: c.submitting,
	}
}
