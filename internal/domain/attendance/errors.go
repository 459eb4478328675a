package attendance

import "ems/internal/apperror"

var (
	ErrNotFound           = apperror.NotFound("Attendance not found.")
	ErrDuplicate          = apperror.Conflict("Attendance already exists for this employee and date.")
	ErrInvalidEmployeeRef = apperror.Reference("employeeId", "Invalid EmployeeId.")
	ErrCheckOutBeforeIn   = apperror.Validation("checkOut", "CheckOut cannot be earlier than CheckIn.")
	ErrInvalidStatus      = apperror.Validation("status", "Invalid Status value.")
	ErrTimesNotAllowed    = apperror.Validation("checkIn", "CheckIn/CheckOut should be empty for Absent/Leave.")
)
