package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/potenlab/the-potential-backend/internal/core/port"
)

// Handlers bundles every handler group the server mounts.
type Handlers struct {
	Auth          *AuthHandler
	Expert        *ExpertHandler
	Collaboration *CollaborationHandler
	Notification  *NotificationHandler
	Program       *ProgramHandler
	Post          *PostHandler
}

// Server is the REST API server.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer wires the router, middleware and routes.
func NewServer(port string, allowedOrigins []string, handlers Handlers,
	authMiddleware *AuthMiddleware, baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.Auth.Register)
			r.Post("/login", handlers.Auth.Login)
		})

		r.Get("/experts", handlers.Expert.FindExperts)
		r.Get("/experts/{expertID}", handlers.Expert.GetExpert)

		r.Get("/support-programs", handlers.Program.FindPrograms)

		r.Get("/posts", handlers.Post.ListPosts)
		r.Get("/posts/{postID}", handlers.Post.GetPost)

		// Private routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Put("/experts/me", handlers.Expert.UpsertProfile)

			r.Route("/collaboration-requests", func(r chi.Router) {
				r.Post("/", handlers.Collaboration.CreateRequest)
				r.Get("/sent", handlers.Collaboration.ListSent)
				r.Get("/received", handlers.Collaboration.ListReceived)
				r.Patch("/{requestID}", handlers.Collaboration.RespondToRequest)
				r.Delete("/{requestID}", handlers.Collaboration.CancelRequest)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", handlers.Notification.ListNotifications)
				r.Get("/unread-count", handlers.Notification.GetUnreadCount)
				r.Post("/read-all", handlers.Notification.MarkAllRead)
				r.Post("/{notificationID}/read", handlers.Notification.MarkRead)
			})

			r.Post("/posts", handlers.Post.CreatePost)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
