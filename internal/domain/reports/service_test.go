package reports

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ems/internal/apperror"
)

type stubStore struct {
	employees   []EmployeeRow
	departments []DepartmentRow
	attendance  []AttendanceRow
	salaries    []SalaryRow
	err         error

	gotFrom, gotTo    time.Time
	gotYear, gotMonth int
}

func (s *stubStore) EmployeeRows(context.Context) ([]EmployeeRow, error) {
	return s.employees, s.err
}

func (s *stubStore) DepartmentRows(context.Context) ([]DepartmentRow, error) {
	return s.departments, s.err
}

func (s *stubStore) AttendanceRows(_ context.Context, from, to time.Time) ([]AttendanceRow, error) {
	s.gotFrom, s.gotTo = from, to
	return s.attendance, s.err
}

func (s *stubStore) SalaryRows(_ context.Context, year, month int) ([]SalaryRow, error) {
	s.gotYear, s.gotMonth = year, month
	return s.salaries, s.err
}

func TestRenderExcelArtifact(t *testing.T) {
	at := time.Date(2025, 8, 9, 10, 11, 0, 0, time.UTC)
	store := &stubStore{departments: []DepartmentRow{{Name: "HR"}}}
	svc := NewService(store).WithClock(func() time.Time { return at })

	artifact, err := svc.Render(context.Background(), KindDepartments, FormatExcel, Filter{})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if artifact.Filename != "departments-202508091011.xlsx" {
		t.Fatalf("unexpected filename %s", artifact.Filename)
	}
	if artifact.ContentType != ContentTypeXLSX || len(artifact.Body) == 0 {
		t.Fatalf("unexpected artifact %s %d", artifact.ContentType, len(artifact.Body))
	}
}

func TestRenderPDFArtifactForSalary(t *testing.T) {
	store := &stubStore{salaries: []SalaryRow{{EmployeeCode: "E1", Basic: 10}}}
	svc := NewService(store)

	artifact, err := svc.Render(context.Background(), KindSalary, FormatPDF, Filter{Year: 2025, Month: 2})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if artifact.Filename != "salary-2025-02.pdf" || artifact.ContentType != ContentTypePDF {
		t.Fatalf("unexpected artifact %+v", artifact.Filename)
	}
	if store.gotYear != 2025 || store.gotMonth != 2 {
		t.Fatalf("unexpected period passed to store %d-%d", store.gotYear, store.gotMonth)
	}
}

func TestProjectInvertedRangePassesThrough(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)
	from := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	table, err := svc.Project(context.Background(), KindAttendance, Filter{From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.gotFrom.Equal(from) || !store.gotTo.Equal(to) {
		t.Fatal("expected range to reach the store unchanged")
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
	if !strings.Contains(table.Title, "2025-03-31 to 2025-03-01") {
		t.Fatalf("unexpected title %q", table.Title)
	}
}

func TestProjectRequiresFilters(t *testing.T) {
	svc := NewService(&stubStore{})

	if _, err := svc.Project(context.Background(), KindAttendance, Filter{}); !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for missing range, got %v", err)
	}
	if _, err := svc.Project(context.Background(), KindSalary, Filter{Year: 2025}); !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for missing month, got %v", err)
	}
}

func TestProjectPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&stubStore{err: boom})

	if _, err := svc.Render(context.Background(), KindEmployees, FormatPDF, Filter{}); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestParseKindAndFormat(t *testing.T) {
	if k, ok := ParseKind("salary"); !ok || k != KindSalary {
		t.Fatal("expected salary kind")
	}
	if _, ok := ParseKind("payroll"); ok {
		t.Fatal("unexpected kind match")
	}
	if f, ok := ParseFormat("excel"); !ok || f != FormatExcel {
		t.Fatal("expected excel format")
	}
	if _, ok := ParseFormat("csv"); ok {
		t.Fatal("unexpected format match")
	}
}
