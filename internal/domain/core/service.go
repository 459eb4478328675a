package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
	newID func() string
}

func NewService(store StoreAPI) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// WithClock replaces the timestamp source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (Department, error) {
	in = NormalizeDepartment(in)
	if err := ValidateDepartment(in); err != nil {
		return Department{}, err
	}

	taken, err := s.store.DepartmentNameExists(ctx, in.Name)
	if err != nil {
		return Department{}, err
	}
	if taken {
		return Department{}, ErrDepartmentNameTaken
	}

	dep := Department{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   s.now(),
	}
	if err := s.store.CreateDepartment(ctx, dep); err != nil {
		return Department{}, err
	}
	return dep, nil
}

func (s *Service) GetDepartment(ctx context.Context, departmentID string) (Department, error) {
	return s.store.GetDepartment(ctx, departmentID)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

// DeleteDepartment refuses to remove a department that employees still reference.
func (s *Service) DeleteDepartment(ctx context.Context, departmentID string) error {
	exists, err := s.store.DepartmentExists(ctx, departmentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDepartmentNotFound
	}

	inUse, err := s.store.DepartmentHasEmployees(ctx, departmentID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrDepartmentInUse
	}

	deleted, err := s.store.DeleteDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDepartmentNotFound
	}
	return nil
}

func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	in = NormalizeEmployee(in)
	if err := ValidateEmployee(in); err != nil {
		return Employee{}, err
	}

	departmentExists, err := s.store.DepartmentExists(ctx, in.DepartmentID)
	if err != nil {
		return Employee{}, err
	}
	if !departmentExists {
		return Employee{}, ErrInvalidDepartmentRef
	}

	codeTaken, err := s.store.EmployeeCodeExists(ctx, in.EmployeeCode)
	if err != nil {
		return Employee{}, err
	}
	if codeTaken {
		return Employee{}, ErrEmployeeCodeTaken
	}

	emailTaken, err := s.store.EmployeeEmailExists(ctx, in.Email)
	if err != nil {
		return Employee{}, err
	}
	if emailTaken {
		return Employee{}, ErrEmployeeEmailTaken
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	emp := Employee{
		ID:            s.newID(),
		EmployeeCode:  in.EmployeeCode,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		DateOfJoining: in.DateOfJoining.UTC(),
		IsActive:      isActive,
		DepartmentID:  in.DepartmentID,
		CreatedAt:     s.now(),
	}
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// UpdateEmployee changes names, phone and active flag. Code, email and
// department stay as created.
func (s *Service) UpdateEmployee(ctx context.Context, employeeID string, in UpdateEmployeeInput) error {
	in = NormalizeEmployeeUpdate(in)
	if err := ValidateEmployeeUpdate(in); err != nil {
		return err
	}

	updated, err := s.store.UpdateEmployee(ctx, employeeID, in, s.now())
	if err != nil {
		return err
	}
	if !updated {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Service) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

// DeleteEmployee removes the employee. Attendance and salary rows go with it.
func (s *Service) DeleteEmployee(ctx context.Context, employeeID string) error {
	deleted, err := s.store.DeleteEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEmployeeNotFound
	}
	return nil
}
