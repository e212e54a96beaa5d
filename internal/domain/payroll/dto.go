package payroll

import "github.com/shopspring/decimal"

// DashboardResponse aggregates all non-admin accounts across every record
// on file.
type DashboardResponse struct {
	TotalHours      float64        `json:"total_hours"`
	TotalSalary     decimal.Decimal `json:"total_salary"`
	ActiveEmployees int            `json:"active_employees"`
	EmployeeData    []EmployeeData `json:"employee_data"`
}

type EmployeeData struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalHours  float64         `json:"total_hours"`
	TotalSalary decimal.Decimal `json:"total_salary"`
}

// PayrollResponse is the per-month payroll table.
type PayrollResponse struct {
	Month        string            `json:"month"`
	TotalPayroll decimal.Decimal   `json:"total_payroll"`
	PayrollData  []PayrollEmployee `json:"payroll_data"`
}

type PayrollEmployee struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PayType     string          `json:"pay_type"`
	PayRate     decimal.Decimal `json:"pay_rate"`
	TotalHours  float64         `json:"total_hours"`
	TotalSalary decimal.Decimal `json:"total_salary"`
}
