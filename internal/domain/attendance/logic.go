package attendance

import (
	"strings"
	"time"

	"ems/internal/domain/validate"
)

func NormalizeCreate(in CreateInput) CreateInput {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Date = DateOnly(in.Date)
	return in
}

// ValidateCreate runs presence checks, then the cross-field rules.
func ValidateCreate(in CreateInput) error {
	v := validate.New()
	v.Required("employeeId", in.EmployeeID)
	v.Check(!in.Date.IsZero(), "date", "date is required")
	if err := v.Err(); err != nil {
		return err
	}
	return validateTimes(in.Status, in.CheckIn, in.CheckOut)
}

func ValidateUpdate(in UpdateInput) error {
	return validateTimes(in.Status, in.CheckIn, in.CheckOut)
}

func validateTimes(status Status, checkIn, checkOut *Clock) error {
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return ErrCheckOutBeforeIn
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if !status.TimesAllowed() && (checkIn != nil || checkOut != nil) {
		return ErrTimesNotAllowed
	}
	return nil
}

// DateOnly drops the time of day, keeping the calendar date as given.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
