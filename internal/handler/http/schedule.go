package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/schedule"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	CreateSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	ArchiveSchedule(w http.ResponseWriter, r *http.Request)
	RestoreSchedule(w http.ResponseWriter, r *http.Request)

	AssignSchedule(w http.ResponseWriter, r *http.Request)
	UnassignSchedule(w http.ResponseWriter, r *http.Request)
	GetEmployeeSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created", result)
}

func (h *scheduleHandlerImpl) ListSchedules(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	result, err := h.scheduleService.ListSchedules(r.Context(), includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) ArchiveSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ArchiveSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule archived", nil)
}

func (h *scheduleHandlerImpl) RestoreSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.RestoreSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule restored", nil)
}

func (h *scheduleHandlerImpl) AssignSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.AssignSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule assigned", result)
}

func (h *scheduleHandlerImpl) UnassignSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.UnassignSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule unassigned", nil)
}

func (h *scheduleHandlerImpl) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ScheduleForEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
