package reports

import (
	"fmt"
	"sort"
	"time"

	"ems/internal/domain/attendance"
	"ems/internal/domain/payroll"
)

const (
	dateLayout = "2006-01-02"
	emptyCell  = ""
)

func ProjectEmployees(rows []EmployeeRow) Table {
	sorted := append([]EmployeeRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EmployeeCode < sorted[j].EmployeeCode })

	table := Table{
		Title: "Employee Directory",
		Sheet: "Employees",
		Columns: []Column{
			{Header: "EmployeeCode", Weight: 2},
			{Header: "FullName", Weight: 3},
			{Header: "Email", Weight: 4},
			{Header: "Phone", Weight: 2.5},
			{Header: "Department", Weight: 3},
			{Header: "DateOfJoining", Weight: 2.5},
			{Header: "IsActive", Weight: 1.5},
		},
		Rows: make([][]string, 0, len(sorted)),
	}
	for _, r := range sorted {
		table.Rows = append(table.Rows, []string{
			r.EmployeeCode,
			r.FullName,
			r.Email,
			r.Phone,
			r.Department,
			formatDate(r.DateOfJoining),
			yesNo(r.IsActive),
		})
	}
	return table
}

func ProjectDepartments(rows []DepartmentRow) Table {
	sorted := append([]DepartmentRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	table := Table{
		Title: "Departments",
		Sheet: "Departments",
		Columns: []Column{
			{Header: "Name", Weight: 2},
			{Header: "Description", Weight: 5},
		},
		Rows: make([][]string, 0, len(sorted)),
	}
	for _, r := range sorted {
		table.Rows = append(table.Rows, []string{r.Name, r.Description})
	}
	return table
}

// ProjectAttendance orders by date descending, then employee code.
func ProjectAttendance(rows []AttendanceRow, from, to time.Time) Table {
	sorted := append([]AttendanceRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].EmployeeCode < sorted[j].EmployeeCode
	})

	table := Table{
		Title: fmt.Sprintf("Attendance Report (%s to %s)", formatDate(from), formatDate(to)),
		Sheet: "Attendance",
		Columns: []Column{
			{Header: "Date", Weight: 2},
			{Header: "EmployeeCode", Weight: 2},
			{Header: "Name", Weight: 3},
			{Header: "Department", Weight: 3},
			{Header: "Status", Weight: 2},
			{Header: "CheckIn", Weight: 1.5},
			{Header: "CheckOut", Weight: 1.5},
		},
		Rows: make([][]string, 0, len(sorted)),
	}
	for _, r := range sorted {
		table.Rows = append(table.Rows, []string{
			formatDate(r.Date),
			r.EmployeeCode,
			r.Name,
			r.Department,
			string(r.Status),
			formatClock(r.CheckIn),
			formatClock(r.CheckOut),
		})
	}
	return table
}

// ProjectSalary orders by employee code and derives NetPay per row.
func ProjectSalary(rows []SalaryRow, year, month int) Table {
	sorted := append([]SalaryRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EmployeeCode < sorted[j].EmployeeCode })

	table := Table{
		Title: fmt.Sprintf("Salary Report (%s)", period(year, month)),
		Sheet: "Salary",
		Columns: []Column{
			{Header: "EmployeeCode", Weight: 2},
			{Header: "Name", Weight: 3},
			{Header: "Department", Weight: 3},
			{Header: "Basic", Weight: 2},
			{Header: "Allowances", Weight: 2},
			{Header: "Deductions", Weight: 2},
			{Header: "NetPay", Weight: 2},
		},
		Rows: make([][]string, 0, len(sorted)),
	}
	for _, r := range sorted {
		table.Rows = append(table.Rows, []string{
			r.EmployeeCode,
			r.Name,
			r.Department,
			formatMoney(r.Basic),
			formatMoney(r.Allowances),
			formatMoney(r.Deductions),
			formatMoney(payroll.NetPay(r.Basic, r.Allowances, r.Deductions)),
		})
	}
	return table
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return emptyCell
	}
	return t.Format(dateLayout)
}

func formatClock(c *attendance.Clock) string {
	if c == nil {
		return emptyCell
	}
	return c.String()
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", payroll.RoundMoney(amount))
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func period(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
