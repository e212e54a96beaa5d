package payroll

import "context"

// PayrollService derives admin-facing aggregates through the compensation
// engine. Both views are admin only.
type PayrollService interface {
	// GetDashboard aggregates hours and estimated salary across all records
	GetDashboard(ctx context.Context) (DashboardResponse, error)

	// GetPayroll builds the payroll table for one month ("YYYY-MM")
	GetPayroll(ctx context.Context, month string) (PayrollResponse, error)
}
