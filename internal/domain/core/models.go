package core

import "time"

type Employee struct {
	ID             string     `json:"id"`
	EmployeeCode   string     `json:"employeeCode"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DateOfJoining  time.Time  `json:"dateOfJoining"`
	IsActive       bool       `json:"isActive"`
	DepartmentID   string     `json:"departmentId"`
	DepartmentName string     `json:"departmentName"`
	CreatedAt      time.Time  `json:"createdAtUtc"`
	UpdatedAt      *time.Time `json:"updatedAtUtc,omitempty"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Department struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAtUtc"`
	UpdatedAt   *time.Time `json:"updatedAtUtc,omitempty"`
}

type CreateDepartmentInput struct {
	Name        string
	Description string
}

type CreateEmployeeInput struct {
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	DateOfJoining time.Time
	IsActive      *bool
	DepartmentID  string
}

// UpdateEmployeeInput holds the only fields an employee update may change.
type UpdateEmployeeInput struct {
	FirstName string
	LastName  string
	Phone     string
	IsActive  bool
}
