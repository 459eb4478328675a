package payroll

import "ems/internal/apperror"

var (
	ErrNotFound           = apperror.NotFound("Salary record not found.")
	ErrDuplicate          = apperror.Conflict("Salary record already exists for this employee and month.")
	ErrInvalidEmployeeRef = apperror.Reference("employeeId", "Invalid EmployeeId.")
)
