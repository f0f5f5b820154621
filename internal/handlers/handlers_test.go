package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/pokernight/server/docs"
	authhandlers "github.com/pokernight/server/internal/handlers/auth"
	gamehandlers "github.com/pokernight/server/internal/handlers/game"
	ledgerhandlers "github.com/pokernight/server/internal/handlers/ledger"
	reporthandlers "github.com/pokernight/server/internal/handlers/report"
	"github.com/pokernight/server/internal/service"
	"github.com/pokernight/server/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		GameService:       gamehandlers.NewMockService(ctrl),
		LedgerService:     ledgerhandlers.NewMockService(ctrl),
		ReportService:     reporthandlers.NewMockService(ctrl),
		SettlementService: reporthandlers.NewMockSettlementService(ctrl),
	}
	sessions := auth.NewSessionManager(auth.NewJWTService("test-secret"))

	h := New(services, sessions)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockGameHandler := NewMockGameHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().CreateGame(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().AddPlayer(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().UpdateBuyIns(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().UpdateFinalChips(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().SuggestPlayers(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().CalculateResults(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().RecordResults(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GameStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().UserStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GamePlayers(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GameTransactions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		GameHandler:   mockGameHandler,
		LedgerHandler: mockLedgerHandler,
		ReportHandler: mockReportHandler,
		sessions:      auth.NewSessionManager(auth.NewJWTService("test-secret")),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/register", http.StatusOK},
		{"POST", "/login", http.StatusOK},
		{"POST", "/logout", http.StatusOK},
		{"POST", "/create_game", http.StatusUnauthorized},
		{"POST", "/add_player", http.StatusUnauthorized},
		{"POST", "/update_buy_ins", http.StatusUnauthorized},
		{"POST", "/update_final_chips", http.StatusUnauthorized},
		{"GET", "/suggest_players", http.StatusUnauthorized},
		{"POST", "/calculate_results", http.StatusUnauthorized},
		{"POST", "/record_results", http.StatusUnauthorized},
		{"GET", "/game_stats/1", http.StatusUnauthorized},
		{"GET", "/user_stats/1", http.StatusUnauthorized},
		{"GET", "/game_players/1", http.StatusUnauthorized},
		{"GET", "/game_transactions/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestProtectedRouteWithValidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportHandler := NewMockReportHandler(ctrl)
	mockReportHandler.EXPECT().SuggestPlayers(gomock.Any(), gomock.Any()).Times(1)

	jwtService := auth.NewJWTService("test-secret")
	sessions := auth.NewSessionManager(jwtService)

	h := &Handlers{
		AuthHandler:   NewMockAuthHandler(ctrl),
		GameHandler:   NewMockGameHandler(ctrl),
		LedgerHandler: NewMockLedgerHandler(ctrl),
		ReportHandler: mockReportHandler,
		sessions:      sessions,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	grantRec := httptest.NewRecorder()
	assert.NoError(t, sessions.Grant(grantRec, 1))
	cookie := grantRec.Result().Cookies()[0]

	req := httptest.NewRequest("GET", "/suggest_players", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
