package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-api/internal/domain"
	"github.com/hrms-api/internal/middleware"
)

// Handlers - обработчики всех ресурсов API
type Handlers struct {
	Auth           *AuthHandler
	Tenant         *TenantHandler
	Employee       *EmployeeHandler
	Goal           *GoalHandler
	Review         *ReviewHandler
	LeaveRequest   *LeaveRequestHandler
	Timesheet      *TimesheetHandler
	Announcement   *AnnouncementHandler
	Recognition    *RecognitionHandler
	OnboardingTask *OnboardingTaskHandler
	Document       *DocumentHandler
}

// crudHandler - пять стандартных операций ресурса
type crudHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Router настраивает маршруты API
type Router struct {
	handlers       Handlers
	verifier       middleware.TokenVerifier
	allowedOrigins []string
	logger         *slog.Logger
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, verifier middleware.TokenVerifier, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		handlers:       handlers,
		verifier:       verifier,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	h := rt.handlers
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Recoverer(rt.logger))
	r.Use(middleware.CORS(rt.allowedOrigins))
	r.Use(middleware.ContentType)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"method not allowed"}`))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/setup-tenant-admin", h.Auth.SetupTenantAdmin)
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.verifier))
			r.Get("/profile", h.Auth.Profile)
			r.With(middleware.RequireRole(domain.RoleAdmin, domain.RoleHR)).Post("/users", h.Auth.CreateUser)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.verifier))

		r.Route("/tenants/current", func(r chi.Router) {
			r.Get("/", h.Tenant.GetCurrent)
			r.With(middleware.RequireRole(domain.RoleAdmin)).Put("/", h.Tenant.UpdateCurrent)
		})

		// Сотрудников меняют только администраторы и HR
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Get("/{id}", h.Employee.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleHR))
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})
		})

		r.Route("/goals", mountCRUD(h.Goal))
		r.Route("/reviews", mountCRUD(h.Review))
		r.Route("/leave-requests", mountCRUD(h.LeaveRequest))
		r.Route("/timesheets", mountCRUD(h.Timesheet))
		r.Route("/announcements", mountCRUD(h.Announcement))
		r.Route("/recognitions", mountCRUD(h.Recognition))
		r.Route("/onboarding-tasks", mountCRUD(h.OnboardingTask))

		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload-url", h.Document.UploadURL)
			r.Get("/{id}/download-url", h.Document.DownloadURL)
			mountCRUD(h.Document)(r)
		})
	})

	return r
}

func mountCRUD(h crudHandler) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	}
}
