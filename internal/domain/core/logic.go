package core

import (
	"strings"

	"ems/internal/domain/validate"
)

const (
	MaxDepartmentNameLength = 100
	MaxEmployeeCodeLength   = 20
	MaxPersonNameLength     = 50
	MaxEmailLength          = 120
	MaxPhoneLength          = 20
)

func NormalizeDepartment(in CreateDepartmentInput) CreateDepartmentInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func ValidateDepartment(in CreateDepartmentInput) error {
	v := validate.New()
	v.Required("name", in.Name)
	v.MaxLength("name", in.Name, MaxDepartmentNameLength)
	return v.Err()
}

// NormalizeEmployee trims every text field and lowercases the email.
func NormalizeEmployee(in CreateEmployeeInput) CreateEmployeeInput {
	in.EmployeeCode = strings.TrimSpace(in.EmployeeCode)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.DepartmentID = strings.TrimSpace(in.DepartmentID)
	return in
}

// ValidateEmployee reports missing fields before any length violation.
func ValidateEmployee(in CreateEmployeeInput) error {
	v := validate.New()
	v.Required("employeeCode", in.EmployeeCode)
	requirePerson(v, in.FirstName, in.LastName, in.Phone)
	v.Required("email", in.Email)
	v.Check(!in.DateOfJoining.IsZero(), "dateOfJoining", "dateOfJoining is required")
	v.Required("departmentId", in.DepartmentID)

	v.MaxLength("employeeCode", in.EmployeeCode, MaxEmployeeCodeLength)
	limitPerson(v, in.FirstName, in.LastName, in.Phone)
	v.MaxLength("email", in.Email, MaxEmailLength)
	return v.Err()
}

func NormalizeEmployeeUpdate(in UpdateEmployeeInput) UpdateEmployeeInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func ValidateEmployeeUpdate(in UpdateEmployeeInput) error {
	v := validate.New()
	requirePerson(v, in.FirstName, in.LastName, in.Phone)
	limitPerson(v, in.FirstName, in.LastName, in.Phone)
	return v.Err()
}

func requirePerson(v *validate.Validator, firstName, lastName, phone string) {
	v.Required("firstName", firstName)
	v.Required("lastName", lastName)
	v.Required("phone", phone)
}

func limitPerson(v *validate.Validator, firstName, lastName, phone string) {
	v.MaxLength("firstName", firstName, MaxPersonNameLength)
	v.MaxLength("lastName", lastName, MaxPersonNameLength)
	v.MaxLength("phone", phone, MaxPhoneLength)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
