package payroll

import (
	"context"
	"time"
)

type StoreAPI interface {
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	RecordExists(ctx context.Context, employeeID string, year, month int) (bool, error)
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	UpdateAmounts(ctx context.Context, id string, amounts Amounts, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
