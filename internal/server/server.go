package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/auth"
	"github.com/skillwave/skillwave-api/internal/handler"
	"github.com/skillwave/skillwave-api/internal/httputil"
	"github.com/skillwave/skillwave-api/internal/middleware"
)

// Handlers bundles the route handlers the server mounts.
type Handlers struct {
	User        *handler.UserHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Company     *handler.CompanyHandler
	Upload      *handler.UploadHandler
}

// Server is the HTTP front of the application.
type Server struct {
	router chi.Router
}

// New assembles the router: global middleware, the public routes, and the
// session/admin-guarded route groups.
func New(h Handlers, tokenAuth auth.TokenAuthenticator, corsOrigin string, logger *zerolog.Logger) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	requireSession := middleware.RequireSession(tokenAuth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			httputil.Message(w, http.StatusOK, "ok", true)
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.User.Register)
			r.Post("/login", h.User.Login)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Get("/logout", h.User.Logout)
				r.Post("/profile/update", h.User.UpdateProfile)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Post("/signup", h.User.AdminSignup)
				r.Post("/login", h.User.AdminLogin)

				r.Group(func(r chi.Router) {
					r.Use(requireSession, middleware.RequireAdmin)
					r.Get("/job-seekers", h.User.JobSeekers)
					r.Delete("/job-seekers/{id}", h.User.DeleteJobSeeker)
					r.Get("/activities", h.Application.Activities)
				})
			})
		})

		r.Route("/job", func(r chi.Router) {
			r.Use(requireSession)
			r.Post("/post", h.Job.Post)
			r.Get("/get", h.Job.Search)
			r.Get("/get/{id}", h.Job.GetByID)
			r.Get("/getrecruiterjobs", h.Job.RecruiterJobs)
		})

		r.Route("/application", func(r chi.Router) {
			r.Use(requireSession)
			r.Post("/apply/{id}", h.Application.Apply)
			r.Get("/get", h.Application.AppliedJobs)
			r.Get("/{id}/applicants", h.Application.Applicants)
			r.Post("/status/{id}/update", h.Application.UpdateStatus)
		})

		r.Route("/company", func(r chi.Router) {
			r.Use(requireSession)
			r.Post("/register", h.Company.Register)
			r.Get("/get", h.Company.List)
			r.Get("/get/{id}", h.Company.GetByID)
			r.Put("/update/{id}", h.Company.Update)
		})

		r.With(requireSession).Post("/upload", h.Upload.Upload)
	})

	return &Server{router: r}
}

// Handler exposes the assembled router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen serves the API on the given address until the listener fails.
func (s *Server) Listen(addr string) error {
	return http.ListenAndServe(addr, s.router)
}
