package reports

import (
	"context"
	"fmt"
	"time"

	"ems/internal/apperror"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Project reads the rows for kind and flattens them. An inverted attendance
// range is queried as given and simply matches nothing.
func (s *Service) Project(ctx context.Context, kind Kind, filter Filter) (Table, error) {
	switch kind {
	case KindEmployees:
		rows, err := s.store.EmployeeRows(ctx)
		if err != nil {
			return Table{}, err
		}
		return ProjectEmployees(rows), nil
	case KindDepartments:
		rows, err := s.store.DepartmentRows(ctx)
		if err != nil {
			return Table{}, err
		}
		return ProjectDepartments(rows), nil
	case KindAttendance:
		if filter.From.IsZero() || filter.To.IsZero() {
			return Table{}, apperror.Validation("from", "from and to are required")
		}
		rows, err := s.store.AttendanceRows(ctx, filter.From, filter.To)
		if err != nil {
			return Table{}, err
		}
		return ProjectAttendance(rows, filter.From, filter.To), nil
	case KindSalary:
		if filter.Year == 0 || filter.Month == 0 {
			return Table{}, apperror.Validation("year", "year and month are required")
		}
		rows, err := s.store.SalaryRows(ctx, filter.Year, filter.Month)
		if err != nil {
			return Table{}, err
		}
		return ProjectSalary(rows, filter.Year, filter.Month), nil
	}
	return Table{}, apperror.Validation("kind", fmt.Sprintf("unknown report %q", kind))
}

func (s *Service) Render(ctx context.Context, kind Kind, format Format, filter Filter) (Artifact, error) {
	table, err := s.Project(ctx, kind, filter)
	if err != nil {
		return Artifact{}, err
	}
	generatedAt := s.now()

	var artifact Artifact
	switch format {
	case FormatExcel:
		artifact.Body, err = RenderSpreadsheet(table)
		artifact.ContentType = ContentTypeXLSX
		artifact.Filename = Filename(kind, filter, generatedAt) + ".xlsx"
	case FormatPDF:
		artifact.Body, err = RenderDocument(table, generatedAt)
		artifact.ContentType = ContentTypePDF
		artifact.Filename = Filename(kind, filter, generatedAt) + ".pdf"
	default:
		return Artifact{}, apperror.Validation("format", fmt.Sprintf("unknown format %q", format))
	}
	if err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

// Filename is the download name without extension. Directory-style reports
// are stamped with the generation minute, the others with their period.
func Filename(kind Kind, filter Filter, generatedAt time.Time) string {
	stamp := generatedAt.UTC().Format("200601021504")
	switch kind {
	case KindEmployees:
		return "employee-directory-" + stamp
	case KindDepartments:
		return "departments-" + stamp
	case KindAttendance:
		return "attendance-" + filter.From.Format("20060102") + "-" + filter.To.Format("20060102")
	case KindSalary:
		return "salary-" + period(filter.Year, filter.Month)
	}
	return string(kind) + "-" + stamp
}
