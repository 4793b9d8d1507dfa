package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/workline-ph/erp-backend-go/internal/config"
	appHTTP "github.com/workline-ph/erp-backend-go/internal/handler/http"
	"github.com/workline-ph/erp-backend-go/internal/pkg/cron"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
	"github.com/workline-ph/erp-backend-go/internal/pkg/jwt"
	"github.com/workline-ph/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workline-ph/erp-backend-go/internal/service/attendance"
	deductionService "github.com/workline-ph/erp-backend-go/internal/service/deduction"
	employeeService "github.com/workline-ph/erp-backend-go/internal/service/employee"
	"github.com/workline-ph/erp-backend-go/internal/service/master"
	payrollService "github.com/workline-ph/erp-backend-go/internal/service/payroll"
	reportService "github.com/workline-ph/erp-backend-go/internal/service/report"
	scheduleService "github.com/workline-ph/erp-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	employeeScheduleRepo := postgresql.NewEmployeeScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deductionRuleRepo := postgresql.NewDeductionRuleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	positionSvc := master.NewPositionService(positionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, positionRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeScheduleRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, scheduleSvc)
	deductionSvc := deductionService.NewDeductionService(deductionRuleRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, auditLogRepo, attendanceRepo, employeeRepo, deductionRuleRepo)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Master:     appHTTP.NewMasterHandler(positionSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Deduction:  appHTTP.NewDeductionHandler(deductionSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAbsenceSweeper(attendanceRepo, employeeRepo).Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server starting", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}
