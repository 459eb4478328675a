package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"ems/internal/domain/attendance"
	"ems/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeRows(ctx context.Context) ([]EmployeeRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.employee_code, e.first_name || ' ' || e.last_name, e.email, e.phone,
           d.name, e.date_of_joining, e.is_active
    FROM employees e
    JOIN departments d ON d.id = e.department_id
    ORDER BY e.employee_code
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeRow, 0)
	for rows.Next() {
		var r EmployeeRow
		if err := rows.Scan(&r.EmployeeCode, &r.FullName, &r.Email, &r.Phone, &r.Department, &r.DateOfJoining, &r.IsActive); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) DepartmentRows(ctx context.Context) ([]DepartmentRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT name, COALESCE(description, '')
    FROM departments
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DepartmentRow, 0)
	for rows.Next() {
		var r DepartmentRow
		if err := rows.Scan(&r.Name, &r.Description); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) AttendanceRows(ctx context.Context, from, to time.Time) ([]AttendanceRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.work_date, e.employee_code, e.first_name || ' ' || e.last_name, d.name,
           a.status, a.check_in, a.check_out
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id
    JOIN departments d ON d.id = e.department_id
    WHERE a.work_date >= $1 AND a.work_date <= $2
    ORDER BY a.work_date DESC, e.employee_code
  `, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttendanceRow, 0)
	for rows.Next() {
		var (
			r                 AttendanceRow
			code              int
			checkIn, checkOut pgtype.Time
		)
		if err := rows.Scan(&r.Date, &r.EmployeeCode, &r.Name, &r.Department, &code, &checkIn, &checkOut); err != nil {
			return nil, err
		}
		r.Status, _ = attendance.StatusFromCode(code)
		r.CheckIn = clockFrom(checkIn)
		r.CheckOut = clockFrom(checkOut)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) SalaryRows(ctx context.Context, year, month int) ([]SalaryRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.employee_code, e.first_name || ' ' || e.last_name, d.name,
           s.basic::float8, s.allowances::float8, s.deductions::float8
    FROM salary_records s
    JOIN employees e ON e.id = s.employee_id
    JOIN departments d ON d.id = e.department_id
    WHERE s.year = $1 AND s.month = $2
    ORDER BY e.employee_code
  `, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SalaryRow, 0)
	for rows.Next() {
		var r SalaryRow
		if err := rows.Scan(&r.EmployeeCode, &r.Name, &r.Department, &r.Basic, &r.Allowances, &r.Deductions); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func clockFrom(t pgtype.Time) *attendance.Clock {
	if !t.Valid {
		return nil
	}
	c := attendance.ClockFromDuration(time.Duration(t.Microseconds) * time.Microsecond)
	return &c
}
