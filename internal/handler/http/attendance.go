package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/attendance"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	TimeIn(w http.ResponseWriter, r *http.Request)
	TimeOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	RejectOvertime(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) TimeIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.TimeInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.TimeIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timed in", result)
}

func (h *attendanceHandlerImpl) TimeOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.TimeOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.TimeOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timed out", result)
}

func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter attendance.AttendanceFilter
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
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.attendanceService.List(r.Context(), filter)
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

func (h *attendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved", result)
}

func (h *attendanceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rejected", result)
}

func (h *attendanceHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ApproveOvertime(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", result)
}

func (h *attendanceHandlerImpl) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.RejectOvertime(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected", result)
}

func (h *attendanceHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Archive(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance archived", nil)
}
