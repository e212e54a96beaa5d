package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// List implements ReportHandler.
func (h *ReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.GetDailyReports(r.Context())
	if err != nil {
		slog.Error("GetDailyReports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
