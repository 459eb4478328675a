package core

import (
	"context"
	"time"

	"ems/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const (
	constraintDepartmentName     = "uq_departments_name"
	constraintEmployeeCode       = "uq_employees_code"
	constraintEmployeeEmail      = "uq_employees_email"
	constraintEmployeeDepartment = "fk_employees_department"
)

func (s *Store) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, departmentID)
}

func (s *Store) DepartmentNameExists(ctx context.Context, name string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE name = $1)`, name)
}

func (s *Store) CreateDepartment(ctx context.Context, dep Department) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO departments (id, name, description, created_at_utc)
    VALUES ($1,$2,$3,$4)
  `, dep.ID, dep.Name, querier.NullIfEmpty(dep.Description), dep.CreatedAt)
	if constraint, ok := querier.UniqueViolation(err); ok && constraint == constraintDepartmentName {
		return ErrDepartmentNameTaken.WithCause(err)
	}
	return err
}

func (s *Store) GetDepartment(ctx context.Context, departmentID string) (Department, error) {
	var dep Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at_utc, updated_at_utc
    FROM departments
    WHERE id = $1
  `, departmentID).Scan(&dep.ID, &dep.Name, &dep.Description, &dep.CreatedAt, &dep.UpdatedAt)
	if querier.NoRows(err) {
		return Department{}, ErrDepartmentNotFound
	}
	if err != nil {
		return Department{}, err
	}
	return dep, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at_utc, updated_at_utc
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]Department, 0)
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.Name, &dep.Description, &dep.CreatedAt, &dep.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dep)
	}
	return departments, rows.Err()
}

func (s *Store) DepartmentHasEmployees(ctx context.Context, departmentID string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE department_id = $1)`, departmentID)
}

func (s *Store) DeleteDepartment(ctx context.Context, departmentID string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM departments WHERE id = $1`, departmentID)
	if _, ok := querier.ForeignKeyViolation(err); ok {
		return false, ErrDepartmentInUse.WithCause(err)
	}
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) EmployeeCodeExists(ctx context.Context, code string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employee_code = $1)`, code)
}

func (s *Store) EmployeeEmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, email)
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (id, employee_code, first_name, last_name, email, phone,
                           date_of_joining, is_active, department_id, created_at_utc)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
  `, emp.ID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.DateOfJoining, emp.IsActive, emp.DepartmentID, emp.CreatedAt)
	if constraint, ok := querier.UniqueViolation(err); ok {
		switch constraint {
		case constraintEmployeeEmail:
			return ErrEmployeeEmailTaken.WithCause(err)
		case constraintEmployeeCode:
			return ErrEmployeeCodeTaken.WithCause(err)
		}
	}
	if constraint, ok := querier.ForeignKeyViolation(err); ok && constraint == constraintEmployeeDepartment {
		return ErrInvalidDepartmentRef.WithCause(err)
	}
	return err
}

const employeeColumns = `
    e.id, e.employee_code, e.first_name, e.last_name, e.email, e.phone,
    e.date_of_joining, e.is_active, e.department_id, d.name,
    e.created_at_utc, e.updated_at_utc`

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees e
    JOIN departments d ON d.id = e.department_id
    WHERE e.id = $1
  `, employeeID)

	emp, err := scanEmployee(row)
	if querier.NoRows(err) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees e
    JOIN departments d ON d.id = e.department_id
    ORDER BY e.first_name, e.last_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, in UpdateEmployeeInput, updatedAt time.Time) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $2, last_name = $3, phone = $4, is_active = $5, updated_at_utc = $6
    WHERE id = $1
  `, employeeID, in.FirstName, in.LastName, in.Phone, in.IsActive, updatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.DateOfJoining, &emp.IsActive, &emp.DepartmentID, &emp.DepartmentName,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (s *Store) exists(ctx context.Context, sql string, args ...any) (bool, error) {
	var found bool
	if err := s.DB.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
