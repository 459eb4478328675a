package reports

import (
	"time"

	"ems/internal/domain/attendance"
)

type Kind string

const (
	KindEmployees   Kind = "employees"
	KindDepartments Kind = "departments"
	KindAttendance  Kind = "attendance"
	KindSalary      Kind = "salary"
)

func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindEmployees, KindDepartments, KindAttendance, KindSalary:
		return Kind(value), true
	}
	return "", false
}

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

func ParseFormat(value string) (Format, bool) {
	switch Format(value) {
	case FormatPDF, FormatExcel:
		return Format(value), true
	}
	return "", false
}

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Filter carries the per-kind parameters: an inclusive date range for
// attendance, a year and month for salary. Other kinds ignore it.
type Filter struct {
	From  time.Time
	To    time.Time
	Year  int
	Month int
}

type Column struct {
	Header string
	// Weight is the relative width in the document renderer.
	Weight float64
}

// Table is the flat, display-ready projection both renderers consume.
type Table struct {
	Title   string
	Sheet   string
	Columns []Column
	Rows    [][]string
}

func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Header
	}
	return out
}

type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

type EmployeeRow struct {
	EmployeeCode  string
	FullName      string
	Email         string
	Phone         string
	Department    string
	DateOfJoining time.Time
	IsActive      bool
}

type DepartmentRow struct {
	Name        string
	Description string
}

type AttendanceRow struct {
	Date         time.Time
	EmployeeCode string
	Name         string
	Department   string
	Status       attendance.Status
	CheckIn      *attendance.Clock
	CheckOut     *attendance.Clock
}

type SalaryRow struct {
	EmployeeCode string
	Name         string
	Department   string
	Basic        float64
	Allowances   float64
	Deductions   float64
}
