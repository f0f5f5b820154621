package service

import (
	authhandlers "github.com/pokernight/server/internal/handlers/auth"
	gamehandlers "github.com/pokernight/server/internal/handlers/game"
	ledgerhandlers "github.com/pokernight/server/internal/handlers/ledger"
	reporthandlers "github.com/pokernight/server/internal/handlers/report"

	pkgauth "github.com/pokernight/server/pkg/auth"

	"github.com/pokernight/server/internal/repo"
	authservice "github.com/pokernight/server/internal/service/authservice"
	gameservice "github.com/pokernight/server/internal/service/gameservice"
	ledgerservice "github.com/pokernight/server/internal/service/ledgerservice"
	reportservice "github.com/pokernight/server/internal/service/reportservice"
	settlementservice "github.com/pokernight/server/internal/service/settlementservice"
)

type Services struct {
	AuthService       authhandlers.Service
	GameService       gamehandlers.Service
	LedgerService     ledgerhandlers.Service
	ReportService     reporthandlers.Service
	SettlementService reporthandlers.SettlementService
}

func New(repo *repo.Repositories) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{})
	gameService := gameservice.New(repo.GameRepo, repo.UserRepo, repo.PlayerRepo)
	ledgerService := ledgerservice.New(repo.GameRepo, repo.PlayerRepo)
	settlementService := settlementservice.New(repo.GameRepo, repo.PlayerRepo, repo.TransactionRepo)
	reportService := reportservice.New(repo.UserRepo, repo.PlayerRepo, repo.TransactionRepo)

	return &Services{
		AuthService:       authService,
		GameService:       gameService,
		LedgerService:     ledgerService,
		ReportService:     reportService,
		SettlementService: settlementService,
	}
}
