package services

import (
	"context"

	"github.com/unicsmcr/hs_employees/entities"
)

// EmployeeService is the service for interactions with the employees of the employees API.
// Every call is made on behalf of the user holding token
type EmployeeService interface {
	GetEmployees(ctx context.Context, token string, query entities.EmployeeQuery) (*entities.EmployeePage, error)
	GetEmployeeWithID(ctx context.Context, token, id string) (*entities.Employee, error)

	CreateEmployee(ctx context.Context, token string, draft entities.EmployeeDraft) error
	UpdateEmployeeWithID(ctx context.Context, token, id string, draft entities.EmployeeDraft) error

	DeleteEmployeeWithID(ctx context.Context, token, id string) error
}
