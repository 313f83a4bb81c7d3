package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/buildcrew/sitepulse-backend-go/internal/handler/http/middleware"
	"github.com/buildcrew/sitepulse-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Face       FaceHandler
	Attendance AttendanceHandler
	Worker     WorkerHandler
	Task       TaskHandler
	Site       SiteHandler
	DPR        DPRHandler
	Events     EventsHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, uploadDir string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitepulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Worker photos served straight off disk.
	if uploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Kiosk surface: the recognition loop polls these without a user
		// session.
		r.Route("/descriptors", func(r chi.Router) {
			r.Post("/", h.Face.SaveDescriptor)
			r.Get("/", h.Face.ListDescriptors)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", h.Attendance.Mark)
			r.Get("/", h.Attendance.ListForDay)
			r.Get("/today", h.Attendance.ListToday)
			r.Get("/history", h.Attendance.History)
			r.Get("/summary", h.Attendance.Summary)
			r.Get("/export", h.Attendance.Export)
		})

		r.Get("/events", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Post("/", h.Worker.Create)
				r.Get("/", h.Worker.List)
				r.Put("/{id}", h.Worker.Update)
				r.Delete("/{id}", h.Worker.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/assign", h.Task.Assign)
				r.Post("/{id}/complete", h.Task.Complete)
				r.Get("/", h.Task.List)
				r.Get("/dpr", h.Task.DailyReport)
			})

			r.Route("/dpr", func(r chi.Router) {
				r.Post("/", h.DPR.Save)
				r.Get("/", h.DPR.List)
				r.Get("/export", h.DPR.Export)
			})

			r.Route("/sites", func(r chi.Router) {
				r.Post("/", h.Site.Create)
				r.Get("/", h.Site.List)
				r.Delete("/{id}", h.Site.Delete)
				r.Get("/{id}/attendance", h.Site.Attendance)
			})
		})
	})
	return r
}
