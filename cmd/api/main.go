package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sebenza-hr/staffdesk-bff/internal/config"
	appHTTP "github.com/sebenza-hr/staffdesk-bff/internal/handler/http"
	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/jwt"
	"github.com/sebenza-hr/staffdesk-bff/internal/repository/staffapi"
	assistantService "github.com/sebenza-hr/staffdesk-bff/internal/service/assistant"
	attendanceService "github.com/sebenza-hr/staffdesk-bff/internal/service/attendance"
	dashboardService "github.com/sebenza-hr/staffdesk-bff/internal/service/dashboard"
	leaveService "github.com/sebenza-hr/staffdesk-bff/internal/service/leave"
	payrollService "github.com/sebenza-hr/staffdesk-bff/internal/service/payroll"
	reportService "github.com/sebenza-hr/staffdesk-bff/internal/service/report"
	staffService "github.com/sebenza-hr/staffdesk-bff/internal/service/staff"
	zoneService "github.com/sebenza-hr/staffdesk-bff/internal/service/zone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "staffdesk-bff"),
		slog.String("env", cfg.App.Env),
	)

	client := staffapi.NewClient(cfg.Upstream, logger)

	staffRepo := staffapi.NewStaffRepository(client)
	attendanceRepo := staffapi.NewAttendanceRepository(client)
	zoneRepo := staffapi.NewZoneRepository(client)
	leaveRepo := staffapi.NewLeaveRepository(client)
	payrollRepo := staffapi.NewPayrollRepository(client)
	reportRepo := staffapi.NewReportRepository(client)
	assistantRepo := staffapi.NewAssistantRepository(client)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, logger)
	zoneSvc := zoneService.NewZoneService(zoneRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, staffRepo, logger)
	reportSvc := reportService.NewReportService(reportRepo)
	assistantSvc := assistantService.NewAssistantService(assistantRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		attendanceSvc,
		zoneSvc,
		staffRepo,
		leaveRepo,
		payrollRepo,
		reportRepo,
		logger,
	)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	zoneHandler := appHTTP.NewZoneHandler(zoneSvc)
	leaveHandler := appHTTP.NewLeaveHandler(JWTService, leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	assistantHandler := appHTTP.NewAssistantHandler(JWTService, assistantSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		dashboardHandler,
		staffHandler,
		attendanceHandler,
		zoneHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
		assistantHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
