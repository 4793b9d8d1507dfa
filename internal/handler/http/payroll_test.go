package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-ph/erp-backend-go/internal/domain/payroll"
)

type fakePayrollService struct {
	payroll.PayrollService
	auditFilter payroll.AuditLogFilter
}

func (f *fakePayrollService) AuditLogs(_ context.Context, filter payroll.AuditLogFilter) ([]payroll.AuditLogResponse, error) {
	f.auditFilter = filter
	return nil, nil
}

func TestAuditLogsFilters(t *testing.T) {
	t.Run("payroll_id query parameter", func(t *testing.T) {
		svc := &fakePayrollService{}
		handler := NewPayrollHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/payrolls/audit-logs?payroll_id=pay-1", nil)
		handler.AuditLogs(httptest.NewRecorder(), req)

		require.NotNil(t, svc.auditFilter.PayrollID)
		assert.Equal(t, "pay-1", *svc.auditFilter.PayrollID)
	})

	t.Run("path parameter wins", func(t *testing.T) {
		svc := &fakePayrollService{}
		handler := NewPayrollHandler(svc)

		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", "pay-2")
		req := httptest.NewRequest(http.MethodGet, "/payrolls/pay-2/audit-logs?payroll_id=pay-1", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		handler.AuditLogs(httptest.NewRecorder(), req)

		require.NotNil(t, svc.auditFilter.PayrollID)
		assert.Equal(t, "pay-2", *svc.auditFilter.PayrollID)
	})

	t.Run("date range", func(t *testing.T) {
		svc := &fakePayrollService{}
		handler := NewPayrollHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/payrolls/audit-logs?start_date=2025-06-01&end_date=2025-06-30", nil)
		handler.AuditLogs(httptest.NewRecorder(), req)

		assert.Nil(t, svc.auditFilter.PayrollID)
		require.NotNil(t, svc.auditFilter.StartDate)
		assert.Equal(t, "2025-06-01", *svc.auditFilter.StartDate)
		require.NotNil(t, svc.auditFilter.EndDate)
		assert.Equal(t, "2025-06-30", *svc.auditFilter.EndDate)
	})
}
