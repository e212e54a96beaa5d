package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/payroll"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Dashboard implements PayrollHandler.
func (h *PayrollHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Payroll implements PayrollHandler.
func (h *PayrollHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		// Default to the current month.
		month = time.Now().Format("2006-01")
	}

	resp, err := h.payrollService.GetPayroll(r.Context(), month)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
