package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)

	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)

	AuditLogs(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch generated", result)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter payroll.PayrollFilter
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if start := query.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := query.Get("end_date"); end != "" {
		filter.EndDate = &end
	}
	if statusParam := query.Get("status"); statusParam != "" {
		statusInt, err := strconv.Atoi(statusParam)
		if err != nil || !payroll.Status(statusInt).Valid() {
			response.BadRequest(w, "status must be a known payroll status", nil)
			return
		}
		status := payroll.Status(statusInt)
		filter.Status = &status
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(result.TotalCount) / result.Limit
	if int(result.TotalCount)%result.Limit > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll submitted for review", result)
}

func (h *payrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll approved", result)
}

func (h *payrollHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req payroll.RejectPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll rejected", result)
}

func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Process(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed", result)
}

func (h *payrollHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req payroll.EditPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated", result)
}

func (h *payrollHandlerImpl) AuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter payroll.AuditLogFilter
	payrollID := chi.URLParam(r, "id")
	if payrollID == "" {
		payrollID = query.Get("payroll_id")
	}
	if payrollID != "" {
		filter.PayrollID = &payrollID
	}
	if start := query.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := query.Get("end_date"); end != "" {
		filter.EndDate = &end
	}

	result, err := h.payrollService.AuditLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
