package repo

import (
	"github.com/pokernight/server/internal/pg"
	gamerepo "github.com/pokernight/server/internal/repo/game-repo"
	playerrepo "github.com/pokernight/server/internal/repo/player-repo"
	transactionrepo "github.com/pokernight/server/internal/repo/transaction-repo"
	userrepo "github.com/pokernight/server/internal/repo/user-repo"
	"github.com/pokernight/server/internal/service/authservice"
	"github.com/pokernight/server/internal/service/gameservice"
	"github.com/pokernight/server/internal/service/settlementservice"
)

type Repositories struct {
	UserRepo        authservice.UserRepo
	GameRepo        gameservice.GameRepo
	PlayerRepo      gameservice.PlayerRepo
	TransactionRepo settlementservice.TransactionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	gameRepo := gamerepo.New(conn)
	playerRepo := playerrepo.New(conn)
	transactionRepo := transactionrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        userRepo,
		GameRepo:        gameRepo,
		PlayerRepo:      playerRepo,
		TransactionRepo: transactionRepo,
	}
}
