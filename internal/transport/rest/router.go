package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/attendance"
	"github.com/frahmantamala/hrm/internal/auth"
	"github.com/frahmantamala/hrm/internal/department"
	"github.com/frahmantamala/hrm/internal/employee"
	"github.com/frahmantamala/hrm/internal/leave"
	"github.com/frahmantamala/hrm/internal/rule"
	"github.com/frahmantamala/hrm/internal/salary"
	"github.com/frahmantamala/hrm/internal/transport/middleware"
	"github.com/frahmantamala/hrm/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers groups everything RegisterAllRoutes mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *auth.Handler
	Department *department.Handler
	Employee   *employee.Handler
	Salary     *salary.Handler
	Attendance *attendance.Handler
	Leave      *leave.Handler
	Rule       *rule.Handler
	Spec       http.HandlerFunc
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, server internal.ServerConfig, logger *slog.Logger) {
	// Apply global middleware
	router.Use(middleware.CORS(server.AllowedOrigins))
	router.Use(middleware.BodyLimit(server.MaxBodyBytes))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI at root (outside API prefix)
	if h.Spec != nil {
		router.Get(swagger.SpecPath, h.Spec)
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.healthCheckHandler)
		r.Get("/ping", h.Health.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/reset", h.Auth.Reset)
			sr.With(h.Auth.SessionMiddleware).Post("/logout", h.Auth.Logout)
		})

		// Protected routes that require a live session
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.SessionMiddleware)

			pr.Get("/session", h.Auth.GetSession)
			pr.Put("/session/section", h.Auth.SelectSection)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Post("/", h.Department.Create)
				dr.Get("/", h.Department.List)
				dr.Get("/ids", h.Department.IDs)
				dr.Delete("/", h.Department.DeleteAll)
				dr.Delete("/{departmentID}", h.Department.Delete)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Post("/", h.Employee.Create)
				er.Get("/", h.Employee.List)
				er.Get("/ids", h.Employee.IDs)
				er.Delete("/", h.Employee.DeleteAll)
				er.Delete("/{empID}", h.Employee.Delete)
			})

			pr.Route("/salaries", func(sr chi.Router) {
				sr.Post("/", h.Salary.Create)
				sr.Get("/", h.Salary.List)
				sr.Get("/payment-methods", h.Salary.PaymentMethods)
				sr.Delete("/", h.Salary.DeleteAll)
				sr.Delete("/{empID}/{paymentDate}", h.Salary.Delete)
			})

			pr.Route("/attendance", func(ar chi.Router) {
				ar.Post("/", h.Attendance.Create)
				ar.Get("/", h.Attendance.List)
				ar.Delete("/", h.Attendance.DeleteAll)
				ar.Delete("/{employeeID}/{date}", h.Attendance.Delete)
			})

			pr.Route("/leaves", func(lr chi.Router) {
				lr.Post("/", h.Leave.Create)
				lr.Get("/", h.Leave.List)
				lr.Get("/types", h.Leave.Types)
				lr.Delete("/", h.Leave.DeleteAll)
				lr.Delete("/{empID}/{startDate}/{endDate}", h.Leave.Delete)
			})

			pr.Route("/rules", func(rr chi.Router) {
				rr.Post("/", h.Rule.Create)
				rr.Get("/", h.Rule.List)
				rr.Delete("/", h.Rule.DeleteAll)
				rr.Delete("/{ruleID}", h.Rule.Delete)
			})
		})
	})
}
