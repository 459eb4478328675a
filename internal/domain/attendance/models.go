package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "HalfDay"
	StatusLeave   Status = "Leave"
)

// statusCodes is the wire and storage mapping. Nothing else sees the integers.
var statusCodes = []struct {
	status Status
	code   int
}{
	{StatusPresent, 1},
	{StatusAbsent, 2},
	{StatusHalfDay, 3},
	{StatusLeave, 4},
}

// StatusFromCode returns the status for an integer code. Unknown codes yield
// an empty, unrecognised status.
func StatusFromCode(code int) (Status, bool) {
	for _, entry := range statusCodes {
		if entry.code == code {
			return entry.status, true
		}
	}
	return "", false
}

func (s Status) Code() int {
	for _, entry := range statusCodes {
		if entry.status == s {
			return entry.code
		}
	}
	return 0
}

func (s Status) Valid() bool {
	return s.Code() != 0
}

// TimesAllowed is false for statuses where nobody clocks in.
func (s Status) TimesAllowed() bool {
	return s != StatusAbsent && s != StatusLeave
}

type Record struct {
	ID             string
	EmployeeID     string
	EmployeeCode   string
	EmployeeName   string
	DepartmentName string
	Date           time.Time
	Status         Status
	CheckIn        *Clock
	CheckOut       *Clock
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type CreateInput struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *Clock
	CheckOut   *Clock
}

type UpdateInput struct {
	Status   Status
	CheckIn  *Clock
	CheckOut *Clock
}

// Filter narrows List. Zero values mean no restriction.
type Filter struct {
	From         *time.Time
	To           *time.Time
	EmployeeID   string
	DepartmentID string
}
