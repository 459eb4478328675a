package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	RecordExists(ctx context.Context, employeeID string, date time.Time) (bool, error)
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	Update(ctx context.Context, id string, in UpdateInput, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
