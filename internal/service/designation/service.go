package designation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/designation"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/table"
)

type designationServiceImpl struct {
	repo designation.DesignationRepository
	view *table.View[designation.Designation]
	form *form.Controller[designation.Draft]
}

func NewDesignationService(repo designation.DesignationRepository, pageSize int) designation.DesignationService {
	return &designationServiceImpl{
		repo: repo,
		view: table.NewView(repo.List, designation.TableSchema, pageSize),
		form: form.NewController[designation.Draft](nil),
	}
}

func (s *designationServiceImpl) List(ctx context.Context, q table.Query) (table.Page[designation.Designation], error) {
	return s.view.Page(ctx, q)
}

func (s *designationServiceImpl) NewDraft() form.Snapshot[designation.Draft] {
	return s.form.New()
}

func (s *designationServiceImpl) EditDraft(ctx context.Context, id string) (form.Snapshot[designation.Draft], error) {
	d, found, err := s.view.Data.Find(ctx, func(d designation.Designation) bool { return d.ID == id })
	if err != nil {
		return form.Snapshot[designation.Draft]{}, err
	}
	if !found {
		return form.Snapshot[designation.Draft]{}, designation.ErrDesignationNotFound
	}
	return s.form.Edit(id, designation.DraftFrom(d)), nil
}

func (s *designationServiceImpl) UpdateDraft(draft designation.Draft) (form.Snapshot[designation.Draft], error) {
	return s.form.Update(draft)
}

func (s *designationServiceImpl) CancelDraft() {
	s.form.Cancel()
}

func (s *designationServiceImpl) CurrentDraft() form.Snapshot[designation.Draft] {
	return s.form.Current()
}

// SubmitDraft creates or updates the designation, then reloads the list.
func (s *designationServiceImpl) SubmitDraft(ctx context.Context) (designation.Draft, error) {
	return s.form.Submit(ctx, s.save, s.view.Data.Refresh)
}

func (s *designationServiceImpl) save(ctx context.Context, id string, draft designation.Draft) error {
	if id == "" {
		if err := s.repo.Create(ctx, draft); err != nil {
			return err
		}
		slog.Info("Designation created", "name", draft.Name, "department", draft.Department)
		return nil
	}
	if err := s.repo.Update(ctx, id, draft); err != nil {
		return err
	}
	slog.Info("Designation updated", "id", id, "name", draft.Name)
	return nil
}

func (s *designationServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Designation deleted", "id", id)

	if editing, err := s.form.EditingID(); err == nil && editing == id {
		s.form.Cancel()
	}

	if err := s.view.Data.Refresh(ctx); err != nil {
		return fmt.Errorf("deleted, but failed to reload the list: %w", err)
	}
	return nil
}
