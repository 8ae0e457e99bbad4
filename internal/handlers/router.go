package handlers

import (
	"net/http"
	"strconv"

	"elitezone/internal/config"
	"elitezone/internal/metrics"
	"elitezone/internal/middleware"
	"elitezone/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	cfg      config.Config
	ledger   Ledger
	sessions Sessions
	hub      *websocket.Hub
}

func New(cfg config.Config, ledger Ledger, sessions Sessions, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:      cfg,
		ledger:   ledger,
		sessions: sessions,
		hub:      hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(middleware.Auth(h.cfg.JWTSecret)).Get("/me", h.Me)
	})
	router.Get("/config", h.GetConfig)
	router.Get("/matches", h.ListMatches)
	router.Get("/matches/{id}", h.GetMatch)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Post("/matches/{id}/join", h.JoinMatch)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Get("/wallet", h.GetWallet)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Post("/wallet/deposit", h.RequestDeposit)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Post("/wallet/withdraw", h.RequestWithdrawal)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Get("/transactions", h.ListTransactions)
	router.With(middleware.Auth(h.cfg.JWTSecret)).Put("/profile", h.UpdateProfile)
	router.Get("/ws/events", h.WSEvents)

	router.Post("/admin/login", h.AdminLogin)
	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Use(middleware.RequireAdmin(h.ledger))
		r.Get("/stats", h.AdminStats)
		r.Get("/users", h.AdminListUsers)
		r.Post("/users/{id}/ban", h.AdminToggleBan)
		r.Post("/users/{id}/adjust", h.AdminAdjustWallet)
		r.Get("/transactions", h.AdminListTransactions)
		r.Post("/transactions/{id}/approve", h.AdminApproveTransaction)
		r.Post("/transactions/{id}/reject", h.AdminRejectTransaction)
		r.Post("/matches", h.AdminCreateMatch)
		r.Put("/matches/{id}", h.AdminUpdateMatch)
		r.Delete("/matches/{id}", h.AdminDeleteMatch)
		r.Post("/matches/{id}/cancel", h.AdminCancelMatch)
		r.Post("/matches/{id}/winner", h.AdminSelectWinner)
		r.Get("/config", h.AdminGetConfig)
		r.Put("/config", h.AdminUpdateConfig)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).Inc()
	})
}
