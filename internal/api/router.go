package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/findify-app/findify-be/internal/api/handlers"
	"github.com/findify-app/findify-be/internal/auth"
	"github.com/findify-app/findify-be/internal/config"
	"github.com/findify-app/findify-be/internal/services"
)

// Relay endpoint rate limits, per client IP.
const (
	footerQuestionLimit = 5
	contactFormLimit    = 10
	rateLimitWindow     = 15 * time.Minute
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	userService services.UserServiceProvider,
	lostService services.LostItemServiceProvider,
	foundService services.FoundItemServiceProvider,
	relayService services.RelayServiceProvider,
	eventService services.EventServiceProvider,
	predictor handlers.CategoryPredictor,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, []byte(cfg.JWTSecret), cfg.IsProduction())
	lostHandler := handlers.NewLostItemHandler(lostService)
	foundHandler := handlers.NewFoundItemHandler(foundService)
	contactHandler := handlers.NewContactHandler(relayService)
	eventHandler := handlers.NewEventHandler(eventService)
	predictHandler := handlers.NewPredictHandler(predictor)

	// Public routes
	r.Post("/signUp", userHandler.SignUp)
	r.Post("/login", userHandler.Login)
	r.Get("/lost", lostHandler.List)
	r.Get("/found", foundHandler.List)

	// Rate-limited relay routes
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(footerQuestionLimit, rateLimitWindow))
		r.Post("/api/footer-question", contactHandler.FooterQuestion)
	})
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(contactFormLimit, rateLimitWindow))
		r.Post("/api/contact", contactHandler.ContactForm)
		r.Post("/api/predict", predictHandler.Predict)
	})

	// Routes over owned resources
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware([]byte(cfg.JWTSecret)))
		r.Use(handlers.AccountGuard(userService))

		r.Get("/me", userHandler.GetMe)
		r.Post("/logout", userHandler.Logout)
		r.Post("/update-username", userHandler.UpdateUsername)
		r.Post("/update-contact", userHandler.UpdateContact)
		r.Post("/delete-account", userHandler.DeleteAccount)
		r.Get("/my-activity", eventHandler.GetMine)

		r.Post("/lost", lostHandler.Create)
		r.Get("/my-lost-items", lostHandler.ListMine)
		r.Delete("/lost/{id}", lostHandler.Resolve)

		r.Post("/found", foundHandler.Create)
		r.Get("/my-found-items", foundHandler.ListMine)
		r.Delete("/found/{id}", foundHandler.Resolve)
	})

	return r
}
