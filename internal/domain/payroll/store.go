package payroll

import (
	"context"
	"strconv"
	"strings"
	"time"

	"ems/internal/platform/querier"
)

const (
	constraintEmployeePeriod = "uq_salary_records_employee_period"
	constraintEmployee       = "fk_salary_records_employee"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var found bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, employeeID).Scan(&found)
	return found, err
}

func (s *Store) RecordExists(ctx context.Context, employeeID string, year, month int) (bool, error) {
	var found bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (
      SELECT 1 FROM salary_records WHERE employee_id = $1 AND year = $2 AND month = $3
    )
  `, employeeID, year, month).Scan(&found)
	return found, err
}

func (s *Store) Create(ctx context.Context, rec Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO salary_records (id, employee_id, year, month, basic, allowances, deductions, created_at_utc)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, rec.ID, rec.EmployeeID, rec.Year, rec.Month, rec.Basic, rec.Allowances, rec.Deductions, rec.CreatedAt)
	if constraint, ok := querier.UniqueViolation(err); ok && constraint == constraintEmployeePeriod {
		return ErrDuplicate.WithCause(err)
	}
	if constraint, ok := querier.ForeignKeyViolation(err); ok && constraint == constraintEmployee {
		return ErrInvalidEmployeeRef.WithCause(err)
	}
	return err
}

const recordSelect = `
    SELECT s.id, s.employee_id, e.employee_code, e.first_name || ' ' || e.last_name, d.name,
           s.year, s.month, s.basic::float8, s.allowances::float8, s.deductions::float8,
           s.created_at_utc, s.updated_at_utc
    FROM salary_records s
    JOIN employees e ON e.id = s.employee_id
    JOIN departments d ON d.id = e.department_id`

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, recordSelect+`
    WHERE s.id = $1`, id))
	if querier.NoRows(err) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Record, error) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if filter.EmployeeID != "" {
		add("s.employee_id = ?", filter.EmployeeID)
	}
	if filter.DepartmentID != "" {
		add("e.department_id = ?", filter.DepartmentID)
	}
	if filter.Year != 0 {
		add("s.year = ?", filter.Year)
	}
	if filter.Month != 0 {
		add("s.month = ?", filter.Month)
	}

	sql := recordSelect
	if len(clauses) > 0 {
		sql += "\n    WHERE " + strings.Join(clauses, " AND ")
	}
	sql += "\n    ORDER BY s.year DESC, s.month DESC, e.first_name"

	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) UpdateAmounts(ctx context.Context, id string, amounts Amounts, updatedAt time.Time) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE salary_records
    SET basic = $2, allowances = $3, deductions = $4, updated_at_utc = $5
    WHERE id = $1
  `, id, amounts.Basic, amounts.Allowances, amounts.Deductions, updatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM salary_records WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeCode, &rec.EmployeeName, &rec.DepartmentName,
		&rec.Year, &rec.Month, &rec.Basic, &rec.Allowances, &rec.Deductions,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
