package payroll

import "time"

type Record struct {
	ID             string
	EmployeeID     string
	EmployeeCode   string
	EmployeeName   string
	DepartmentName string
	Year           int
	Month          int
	Basic          float64
	Allowances     float64
	Deductions     float64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (r Record) NetPay() float64 {
	return NetPay(r.Basic, r.Allowances, r.Deductions)
}

type Amounts struct {
	Basic      float64
	Allowances float64
	Deductions float64
}

type CreateInput struct {
	EmployeeID string
	Year       int
	Month      int
	Amounts
}

// Filter narrows List. Zero values mean no restriction.
type Filter struct {
	EmployeeID   string
	DepartmentID string
	Year         int
	Month        int
}
