package attendance

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"ems/internal/platform/querier"
)

const (
	constraintEmployeeDate = "uq_attendance_employee_date"
	constraintEmployee     = "fk_attendance_employee"
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

func (s *Store) RecordExists(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var found bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (SELECT 1 FROM attendance WHERE employee_id = $1 AND work_date = $2)
  `, employeeID, date).Scan(&found)
	return found, err
}

func (s *Store) Create(ctx context.Context, rec Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO attendance (id, employee_id, work_date, status, check_in, check_out, created_at_utc)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, rec.ID, rec.EmployeeID, rec.Date, rec.Status.Code(), toPgTime(rec.CheckIn), toPgTime(rec.CheckOut), rec.CreatedAt)
	if constraint, ok := querier.UniqueViolation(err); ok && constraint == constraintEmployeeDate {
		return ErrDuplicate.WithCause(err)
	}
	if constraint, ok := querier.ForeignKeyViolation(err); ok && constraint == constraintEmployee {
		return ErrInvalidEmployeeRef.WithCause(err)
	}
	return err
}

const recordSelect = `
    SELECT a.id, a.employee_id, e.employee_code, e.first_name || ' ' || e.last_name, d.name,
           a.work_date, a.status, a.check_in, a.check_out, a.created_at_utc, a.updated_at_utc
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id
    JOIN departments d ON d.id = e.department_id`

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	rec, err := scanRecord(s.DB.QueryRow(ctx, recordSelect+`
    WHERE a.id = $1`, id))
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
	if filter.From != nil {
		add("a.work_date >= ?", *filter.From)
	}
	if filter.To != nil {
		add("a.work_date <= ?", *filter.To)
	}
	if filter.EmployeeID != "" {
		add("a.employee_id = ?", filter.EmployeeID)
	}
	if filter.DepartmentID != "" {
		add("e.department_id = ?", filter.DepartmentID)
	}

	sql := recordSelect
	if len(clauses) > 0 {
		sql += "\n    WHERE " + strings.Join(clauses, " AND ")
	}
	sql += "\n    ORDER BY a.work_date DESC, e.first_name"

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

func (s *Store) Update(ctx context.Context, id string, in UpdateInput, updatedAt time.Time) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE attendance
    SET status = $2, check_in = $3, check_out = $4, updated_at_utc = $5
    WHERE id = $1
  `, id, in.Status.Code(), toPgTime(in.CheckIn), toPgTime(in.CheckOut), updatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec               Record
		code              int
		checkIn, checkOut pgtype.Time
	)
	if err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeCode, &rec.EmployeeName, &rec.DepartmentName,
		&rec.Date, &code, &checkIn, &checkOut, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return Record{}, err
	}
	rec.Status, _ = StatusFromCode(code)
	rec.CheckIn = fromPgTime(checkIn)
	rec.CheckOut = fromPgTime(checkOut)
	return rec, nil
}

func toPgTime(c *Clock) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: c.SinceMidnight().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) *Clock {
	if !t.Valid {
		return nil
	}
	c := ClockFromDuration(time.Duration(t.Microseconds) * time.Microsecond)
	return &c
}
