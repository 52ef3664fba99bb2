package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/govops-lab/ministrydesk/pkg/usecase"
	"github.com/govops-lab/ministrydesk/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(uc.Auth))

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Get("/{taskID}", s.getTask)
			r.Put("/{taskID}", s.updateTask)
			r.Put("/{taskID}/status", s.updateTaskStatus)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", s.listReports)
			r.Post("/", s.createReportRequest)
			r.Get("/{reportID}", s.getReport)
			r.Post("/{reportID}/start", s.startReport)
			r.Post("/{reportID}/submit", s.submitReport)
			r.Post("/{reportID}/review", s.reviewReport)
		})

		r.Get("/notifications", s.listNotifications)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsers)
			r.Post("/", s.createUser)
			r.Get("/me", s.currentUser)
			r.Get("/{userID}", s.getUser)
			r.Put("/{userID}", s.updateUser)
			r.Post("/{userID}/deactivate", s.deactivateUser)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", s.listDepartments)
			r.Post("/", s.createDepartment)
			r.Get("/{departmentID}", s.getDepartment)
			r.Put("/{departmentID}", s.updateDepartment)
			r.Delete("/{departmentID}", s.deleteDepartment)
		})

		r.Route("/ministries", func(r chi.Router) {
			r.Get("/", s.listMinistries)
			r.Post("/", s.createMinistry)
			r.Get("/{ministryID}", s.getMinistry)
			r.Put("/{ministryID}", s.updateMinistry)
			r.Delete("/{ministryID}", s.deleteMinistry)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
