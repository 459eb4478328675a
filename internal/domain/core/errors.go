package core

import "ems/internal/apperror"

var (
	ErrDepartmentNotFound   = apperror.NotFound("department not found")
	ErrEmployeeNotFound     = apperror.NotFound("employee not found")
	ErrDepartmentNameTaken  = apperror.Conflict("department name already exists")
	ErrDepartmentInUse      = apperror.Conflict("department has employees and cannot be deleted")
	ErrEmployeeCodeTaken    = apperror.Conflict("employee code already exists")
	ErrEmployeeEmailTaken   = apperror.Conflict("employee email already exists")
	ErrInvalidDepartmentRef = apperror.Reference("departmentId", "Invalid DepartmentId.")
)
