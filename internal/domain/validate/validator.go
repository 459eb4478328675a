package validate

import (
	"strconv"
	"unicode/utf8"

	"ems/internal/apperror"
)

// Validator keeps the first failed rule. Later checks are no-ops once a
// failure is recorded, so callers list rules in evaluation order.
type Validator struct {
	err *apperror.Error
}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Fail(field, message string) {
	if v.err != nil {
		return
	}
	v.err = apperror.Validation(field, message)
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.Fail(field, message)
	}
}

// Required expects an already trimmed value.
func (v *Validator) Required(field, value string) {
	v.Check(value != "", field, field+" is required")
}

func (v *Validator) MaxLength(field, value string, limit int) {
	v.Check(utf8.RuneCountInString(value) <= limit, field, field+" must be at most "+strconv.Itoa(limit)+" characters")
}

func (v *Validator) MinLength(field, value string, limit int) {
	v.Check(utf8.RuneCountInString(value) >= limit, field, field+" must be at least "+strconv.Itoa(limit)+" characters")
}

func (v *Validator) Range(field string, value, lo, hi int) {
	v.Check(value >= lo && value <= hi, field, field+" must be between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
}

func (v *Validator) NonNegative(field string, value float64) {
	v.Check(value >= 0, field, field+" must not be negative")
}

// Below rejects values at or above limit, keeping amounts inside what the
// store's numeric columns can hold.
func (v *Validator) Below(field string, value, limit float64) {
	v.Check(value < limit, field, field+" must be less than "+strconv.FormatFloat(limit, 'f', -1, 64))
}

func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}
