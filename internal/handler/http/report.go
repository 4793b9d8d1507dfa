package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/report"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number between 1 and 12", nil)
		return
	}
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.reportService.GetMonthlyReport(r.Context(), chi.URLParam(r, "employeeID"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
