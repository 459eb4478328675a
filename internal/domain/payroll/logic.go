package payroll

import (
	"strings"

	"ems/internal/domain/validate"
)

const (
	MinYear = 2000
	MaxYear = 2100

	// AmountLimit bounds every amount to what NUMERIC(18,2) can store.
	AmountLimit = 1e16
)

func NormalizeCreate(in CreateInput) CreateInput {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.Amounts = NormalizeAmounts(in.Amounts)
	return in
}

func NormalizeAmounts(a Amounts) Amounts {
	return Amounts{
		Basic:      RoundMoney(a.Basic),
		Allowances: RoundMoney(a.Allowances),
		Deductions: RoundMoney(a.Deductions),
	}
}

func ValidateCreate(in CreateInput) error {
	v := validate.New()
	v.Required("employeeId", in.EmployeeID)
	v.Range("year", in.Year, MinYear, MaxYear)
	v.Range("month", in.Month, 1, 12)
	validateAmounts(v, in.Amounts)
	return v.Err()
}

func ValidateAmounts(a Amounts) error {
	v := validate.New()
	validateAmounts(v, a)
	return v.Err()
}

func validateAmounts(v *validate.Validator, a Amounts) {
	v.NonNegative("basic", a.Basic)
	v.NonNegative("allowances", a.Allowances)
	v.NonNegative("deductions", a.Deductions)
	v.Below("basic", a.Basic, AmountLimit)
	v.Below("allowances", a.Allowances, AmountLimit)
	v.Below("deductions", a.Deductions, AmountLimit)
}
