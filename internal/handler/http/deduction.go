package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/workline-ph/erp-backend-go/internal/domain/deduction"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	CreateRule(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	ListRules(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	ArchiveRule(w http.ResponseWriter, r *http.Request)
	RestoreRule(w http.ResponseWriter, r *http.Request)
	Calculate(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

func (h *deductionHandlerImpl) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deductionService.CreateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction rule created", result)
}

func (h *deductionHandlerImpl) GetRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.deductionService.GetRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	result, err := h.deductionService.ListRules(r.Context(), includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) UpdateRule(w http.ResponseWriter, r *http.Request) {
	var req deduction.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.deductionService.UpdateRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) ArchiveRule(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.ArchiveRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction rule archived", nil)
}

func (h *deductionHandlerImpl) RestoreRule(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.RestoreRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction rule restored", nil)
}

func (h *deductionHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	grossParam := r.URL.Query().Get("gross")
	gross, err := decimal.NewFromString(grossParam)
	if err != nil || gross.IsNegative() {
		response.BadRequest(w, "gross must be a non-negative number", nil)
		return
	}

	result, err := h.deductionService.Calculate(r.Context(), gross)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
