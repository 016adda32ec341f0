package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler builds the full route tree with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(s.logAccess)
	mux.Use(s.recoverPanic)
	mux.Use(s.cors())
	mux.Use(limitBody)

	mux.NotFound(s.notFound)
	mux.MethodNotAllowed(s.methodNotAllowed)

	mux.Get("/", s.handleWelcome)
	mux.Get("/health", s.handleHealth)
	mux.Get("/api/quote", s.handleQuote)

	mux.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/profile", s.handleProfile)
			r.Put("/auth/profile", s.handleUpdateProfile)
			r.Put("/profile", s.handleUpdateProfile)
			r.Put("/auth/password", s.handleChangePassword)
			r.Post("/auth/avatar", s.handleAvatarUpload)

			r.Get("/tasks", s.handleListTasks)
			r.Post("/tasks", s.handleCreateTask)
			r.Put("/tasks/{id}", s.handleUpdateTask)
			r.Delete("/tasks/{id}", s.handleDeleteTask)

			r.Get("/events", s.handleListEvents)
			r.Post("/events", s.handleCreateEvent)
			r.Put("/events/{id}", s.handleUpdateEvent)
			r.Delete("/events/{id}", s.handleDeleteEvent)

			r.Get("/stats", s.handleStats)

			r.Get("/pomodoro/sessions", s.handleListSessions)
			r.Post("/pomodoro/sessions", s.handleRecordSession)
			r.Get("/pomodoro/stats", s.handlePomodoroStats)
		})
	})

	return mux
}

// endpointIndex is advertised by the welcome document.
var endpointIndex = map[string][]string{
	"auth": {
		"POST /api/auth/register", "POST /api/auth/login", "GET /api/auth/profile",
		"PUT /api/auth/profile", "PUT /api/auth/password", "POST /api/auth/avatar",
	},
	"tasks":    {"GET /api/tasks", "POST /api/tasks", "PUT /api/tasks/:id", "DELETE /api/tasks/:id"},
	"events":   {"GET /api/events", "POST /api/events", "PUT /api/events/:id", "DELETE /api/events/:id"},
	"pomodoro": {"GET /api/pomodoro/sessions", "POST /api/pomodoro/sessions", "GET /api/pomodoro/stats"},
	"stats":    {"GET /api/stats", "GET /api/quote"},
}
