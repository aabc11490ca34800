package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/designation"
)

const designationPath = "/api/designation"

type designationRepositoryImpl struct {
	client Client
}

func NewDesignationRepository(client Client) designation.DesignationRepository {
	return &designationRepositoryImpl{client: client}
}

type designationRecord struct {
	designation.Designation
	DocID string `json:"_id"`
}

// List implements designation.DesignationRepository.
func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	var records []designationRecord
	if err := r.client.List(ctx, designationPath, nil, &records, "designations", "designation"); err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}

	result := make([]designation.Designation, 0, len(records))
	for _, rec := range records {
		d := rec.Designation
		d.ID = idOf(d.ID, rec.DocID)
		result = append(result, d)
	}
	return result, nil
}

// Create implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Create(ctx context.Context, draft designation.Draft) error {
	if err := r.client.Post(ctx, designationPath, draft); err != nil {
		return fmt.Errorf("failed to create designation: %w", err)
	}
	return nil
}

// Update implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Update(ctx context.Context, id string, draft designation.Draft) error {
	if err := r.client.Put(ctx, itemPath(designationPath, id), draft); err != nil {
		return fmt.Errorf("failed to update designation: %w", err)
	}
	return nil
}

// Delete implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, itemPath(designationPath, id)); err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	return nil
}
