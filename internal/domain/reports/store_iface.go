package reports

import (
	"context"
	"time"
)

// StoreAPI is the read path behind the four report kinds.
type StoreAPI interface {
	EmployeeRows(ctx context.Context) ([]EmployeeRow, error)
	DepartmentRows(ctx context.Context) ([]DepartmentRow, error)
	AttendanceRows(ctx context.Context, from, to time.Time) ([]AttendanceRow, error)
	SalaryRows(ctx context.Context, year, month int) ([]SalaryRow, error)
}
