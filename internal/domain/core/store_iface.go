package core

import (
	"context"
	"time"
)

type StoreAPI interface {
	DepartmentExists(ctx context.Context, departmentID string) (bool, error)
	DepartmentNameExists(ctx context.Context, name string) (bool, error)
	CreateDepartment(ctx context.Context, dep Department) error
	GetDepartment(ctx context.Context, departmentID string) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	DepartmentHasEmployees(ctx context.Context, departmentID string) (bool, error)
	DeleteDepartment(ctx context.Context, departmentID string) (bool, error)

	EmployeeCodeExists(ctx context.Context, code string) (bool, error)
	EmployeeEmailExists(ctx context.Context, email string) (bool, error)
	CreateEmployee(ctx context.Context, emp Employee) error
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, in UpdateEmployeeInput, updatedAt time.Time) (bool, error)
	DeleteEmployee(ctx context.Context, employeeID string) (bool, error)
}
