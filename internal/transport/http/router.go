package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pavankalyan07-python/NextAthlete/internal/application/registration"
	"github.com/pavankalyan07-python/NextAthlete/internal/application/session"
	"github.com/pavankalyan07-python/NextAthlete/internal/config"
	"github.com/pavankalyan07-python/NextAthlete/internal/infrastructure/dynamo"
	jwtinfra "github.com/pavankalyan07-python/NextAthlete/internal/infrastructure/jwt"
	"github.com/pavankalyan07-python/NextAthlete/internal/infrastructure/smtp"
	"github.com/pavankalyan07-python/NextAthlete/internal/infrastructure/sns"
	"github.com/pavankalyan07-python/NextAthlete/internal/transport/http/handler"
	appmiddleware "github.com/pavankalyan07-python/NextAthlete/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	SessionRepo *dynamo.SessionRepo
	Mailer      smtp.Mailer
	SMSSender   sns.SMSSender
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	registrationSvc := registration.NewService(registration.ServiceDeps{
		UserRepo:        deps.UserRepo,
		Tokens:          deps.JWTProvider,
		Mailer:          deps.Mailer,
		SMSSender:       deps.SMSSender,
		BcryptCost:      cfg.BcryptCost,
		BaseURL:         cfg.VerificationBaseURL,
		DispatchTimeout: cfg.DispatchTimeout,
	})
	sessionSvc := session.NewService(session.ServiceDeps{
		SessionRepo:     deps.SessionRepo,
		UserRepo:        deps.UserRepo,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenTTL,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(registrationSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	userH := handler.NewUserHandler(deps.UserRepo)

	r.Get("/health", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// ── Public routes (no auth) ──────────────────────────────────
			r.With(sensitiveRL.Limit).Post("/signup", authH.SignUp)
			r.Get("/verify", authH.Verify)
			r.With(sensitiveRL.Limit).Post("/resend", authH.Resend)
			r.With(sensitiveRL.Limit).Post("/login", sessionH.Login)
			r.Post("/refresh", sessionH.Refresh)

			// ── Authenticated routes ─────────────────────────────────────
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.Auth(deps.JWTProvider))
				r.Post("/logout", sessionH.Logout)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))
			r.Get("/me", userH.Me)
		})
	})

	return r
}
