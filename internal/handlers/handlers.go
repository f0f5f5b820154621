package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pokernight/server/docs"
	authhandlers "github.com/pokernight/server/internal/handlers/auth"
	gamehandlers "github.com/pokernight/server/internal/handlers/game"
	ledgerhandlers "github.com/pokernight/server/internal/handlers/ledger"
	reporthandlers "github.com/pokernight/server/internal/handlers/report"
	"github.com/pokernight/server/internal/service"
	"github.com/pokernight/server/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	AddPlayer(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	UpdateBuyIns(w http.ResponseWriter, r *http.Request)
	UpdateFinalChips(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	SuggestPlayers(w http.ResponseWriter, r *http.Request)
	CalculateResults(w http.ResponseWriter, r *http.Request)
	RecordResults(w http.ResponseWriter, r *http.Request)
	GameStats(w http.ResponseWriter, r *http.Request)
	UserStats(w http.ResponseWriter, r *http.Request)
	GamePlayers(w http.ResponseWriter, r *http.Request)
	GameTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	GameHandler   GameHandler
	LedgerHandler LedgerHandler
	ReportHandler ReportHandler

	sessions *auth.SessionManager
}

func New(s *service.Services, sessions *auth.SessionManager) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService, sessions),
		GameHandler:   gamehandlers.New(s.GameService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		ReportHandler: reporthandlers.New(s.ReportService, s.SettlementService),
		sessions:      sessions,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/register", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)
	r.Post("/logout", h.AuthHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.sessions.Middleware)
		r.Post("/create_game", h.GameHandler.CreateGame)
		r.Post("/add_player", h.GameHandler.AddPlayer)
		r.Post("/update_buy_ins", h.LedgerHandler.UpdateBuyIns)
		r.Post("/update_final_chips", h.LedgerHandler.UpdateFinalChips)
		r.Get("/suggest_players", h.ReportHandler.SuggestPlayers)
		r.Post("/calculate_results", h.ReportHandler.CalculateResults)
		r.Post("/record_results", h.ReportHandler.RecordResults)
		r.Get("/game_stats/{gameID}", h.ReportHandler.GameStats)
		r.Get("/user_stats/{userID}", h.ReportHandler.UserStats)
		r.Get("/game_players/{gameID}", h.ReportHandler.GamePlayers)
		r.Get("/game_transactions/{gameID}", h.ReportHandler.GameTransactions)
	})

	return r
}
