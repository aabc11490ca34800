package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
)

const employeePath = "/api/employee"

type employeeRepositoryImpl struct {
	client Client
}

func NewEmployeeRepository(client Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

type employeeRecord struct {
	employee.Employee
	DocID string `json:"_id"`
}

type bulkCreateRequest struct {
	Employees []employee.Draft `json:"employees"`
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var records []employeeRecord
	if err := r.client.List(ctx, employeePath, nil, &records, "employees", "employee"); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.Employee, 0, len(records))
	for _, rec := range records {
		e := rec.Employee
		e.ID = idOf(e.ID, rec.DocID)
		e.Status = e.Status.Normalize()
		result = append(result, e)
	}
	return result, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, draft employee.Draft) error {
	if err := r.client.Post(ctx, employeePath, draft.Normalized()); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, draft employee.Draft) error {
	if err := r.client.Put(ctx, itemPath(employeePath, id), draft.Normalized()); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Disable implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Disable(ctx context.Context, id string) error {
	if err := r.client.Put(ctx, itemPath(employeePath, id, "disable"), nil); err != nil {
		return fmt.Errorf("failed to disable employee: %w", err)
	}
	return nil
}

// BulkCreate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) BulkCreate(ctx context.Context, drafts []employee.Draft) error {
	if err := r.client.Post(ctx, employeePath+"/bulk", bulkCreateRequest{Employees: drafts}); err != nil {
		return fmt.Errorf("failed to import employees: %w", err)
	}
	return nil
}
