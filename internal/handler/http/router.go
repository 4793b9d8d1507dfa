package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workline-ph/erp-backend-go/internal/config"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/middleware"
	"github.com/workline-ph/erp-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Master     MasterHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Deduction  DeductionHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workline-erp"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", h.Master.ListPositions)
			r.Get("/{id}", h.Master.GetPosition)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/", h.Master.CreatePosition)
				r.Put("/{id}", h.Master.UpdatePosition)
				r.Delete("/{id}", h.Master.ArchivePosition)
				r.Post("/{id}/restore", h.Master.RestorePosition)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.Get)
			r.Get("/{employeeID}/schedule", h.Schedule.GetEmployeeSchedule)
			r.Get("/{employeeID}/monthly-report", h.Report.MonthlyReport)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Archive)
				r.Post("/{id}/restore", h.Employee.Restore)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.Schedule.ListSchedules)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/", h.Schedule.CreateSchedule)
				r.Delete("/{id}", h.Schedule.ArchiveSchedule)
				r.Post("/{id}/restore", h.Schedule.RestoreSchedule)
				r.Post("/assign", h.Schedule.AssignSchedule)
				r.Delete("/assignments/{id}", h.Schedule.UnassignSchedule)
			})
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/time-in", h.Attendance.TimeIn)
			r.Post("/time-out", h.Attendance.TimeOut)
			r.Get("/", h.Attendance.List)
			r.Get("/{id}", h.Attendance.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/{id}/approve", h.Attendance.Approve)
				r.Post("/{id}/reject", h.Attendance.Reject)
				r.Post("/{id}/overtime/approve", h.Attendance.ApproveOvertime)
				r.Post("/{id}/overtime/reject", h.Attendance.RejectOvertime)
				r.Delete("/{id}", h.Attendance.Archive)
			})
		})

		r.Route("/deduction-rules", func(r chi.Router) {
			r.Get("/", h.Deduction.ListRules)
			r.Get("/calculate", h.Deduction.Calculate)
			r.Get("/{id}", h.Deduction.GetRule)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Post("/", h.Deduction.CreateRule)
				r.Put("/{id}", h.Deduction.UpdateRule)
				r.Delete("/{id}", h.Deduction.ArchiveRule)
				r.Post("/{id}/restore", h.Deduction.RestoreRule)
			})
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Use(middleware.RequireHR)

			r.Post("/generate", h.Payroll.Generate)
			r.Get("/", h.Payroll.List)
			r.Get("/audit-logs", h.Payroll.AuditLogs)
			r.Get("/{id}", h.Payroll.Get)
			r.Get("/{id}/audit-logs", h.Payroll.AuditLogs)

			r.Post("/{id}/submit", h.Payroll.Submit)
			r.Post("/{id}/approve", h.Payroll.Approve)
			r.Post("/{id}/reject", h.Payroll.Reject)
			r.Post("/{id}/process", h.Payroll.Process)
			r.Patch("/{id}", h.Payroll.Edit)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
