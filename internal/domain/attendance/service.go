package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
	newID func() string
}

func NewService(store StoreAPI) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	in = NormalizeCreate(in)
	if err := ValidateCreate(in); err != nil {
		return Record{}, err
	}

	exists, err := s.store.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return Record{}, err
	}
	if !exists {
		return Record{}, ErrInvalidEmployeeRef
	}

	duplicate, err := s.store.RecordExists(ctx, in.EmployeeID, in.Date)
	if err != nil {
		return Record{}, err
	}
	if duplicate {
		return Record{}, ErrDuplicate
	}

	rec := Record{
		ID:         s.newID(),
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Status:     in.Status,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		CreatedAt:  s.now(),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update replaces status and times. Employee and date never change.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	if err := ValidateUpdate(in); err != nil {
		return err
	}
	updated, err := s.store.Update(ctx, id, in, s.now())
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Record, error) {
	if filter.From != nil {
		from := DateOnly(*filter.From)
		filter.From = &from
	}
	if filter.To != nil {
		to := DateOnly(*filter.To)
		filter.To = &to
	}
	return s.store.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
