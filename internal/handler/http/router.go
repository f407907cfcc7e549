package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffly-hq/attendance-backend-go/internal/config"
	"github.com/staffly-hq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffly-hq/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	salaryHandler SalaryHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		// The capture device posts marks without a user session.
		r.Post("/attendances/mark", attendanceHandler.Mark)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", attendanceHandler.List)
					r.Get("/today", dashboardHandler.Today)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminOrHR)
					r.Post("/reclassify", attendanceHandler.Reclassify)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}/schedule", employeeHandler.GetSchedule)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminOrHR)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Patch("/{id}/active", employeeHandler.SetActive)
				})
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Use(middleware.RequireAdminOrHR)
				r.Get("/report", salaryHandler.Report)
				r.Post("/calculate", salaryHandler.Calculate)
				r.Post("/{id}/pay", salaryHandler.MarkPaid)
				r.Patch("/{id}/bonus", salaryHandler.UpdateBonus)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagement)
				r.Get("/dashboard", dashboardHandler.Today)
			})
		})
	})

	return r
}
