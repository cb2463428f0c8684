package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/middleware"
	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	env string,
	dashboardHandler DashboardHandler,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	zoneHandler ZoneHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	assistantHandler AssistantHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk-bff"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Get("/{id}", staffHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", staffHandler.Create)
					r.Put("/{id}", staffHandler.Update)
					r.Delete("/{id}", staffHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/active", attendanceHandler.ActiveStaff)
				r.Route("/flagged-shifts", func(r chi.Router) {
					r.Get("/", attendanceHandler.FlaggedShifts)
					r.Post("/fix", attendanceHandler.FixShift)
				})
			})

			r.Route("/zones", func(r chi.Router) {
				r.Get("/", zoneHandler.List)
				r.Get("/occupancy", zoneHandler.Occupancy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", zoneHandler.Create)
					r.Put("/{id}", zoneHandler.Update)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/{id}/approve", leaveHandler.Approve)
				r.Post("/{id}/reject", leaveHandler.Reject)
			})

			// Admin only
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Route("/runs", func(r chi.Router) {
					r.Get("/", payrollHandler.ListRuns)
					r.Get("/{id}", payrollHandler.GetRun)
					r.Post("/{id}/finalize", payrollHandler.FinalizeRun)
					r.Put("/{id}/payslips/{staffId}/daily-entry", payrollHandler.UpdateDailyEntry)
					r.Get("/{id}/payslips/{staffId}/pdf", payrollHandler.DownloadPayslip)
				})
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Route("/emp201", func(r chi.Router) {
					r.Get("/", reportHandler.GetEMP201)
					r.Get("/export", reportHandler.ExportEMP201)
					r.Get("/export/sars", reportHandler.ExportEMP201SARS)
				})
				r.Route("/emp501", func(r chi.Router) {
					r.Get("/", reportHandler.GetEMP501)
					r.Get("/export", reportHandler.ExportEMP501)
					r.Get("/export/sars", reportHandler.ExportEMP501SARS)
				})
				r.Route("/settlement", func(r chi.Router) {
					r.Get("/", reportHandler.GetSettlement)
					r.Get("/export", reportHandler.ExportSettlement)
				})
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Get("/history", assistantHandler.History)
				r.Post("/chat", assistantHandler.Send)
			})
		})
	})
	return r
}
