package settlementservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/service/gameservice"
)

type TransactionRepo interface {
	SaveAll(ctx context.Context, transactions []domain.Transaction) error
	FindByGameID(ctx context.Context, gameID int) ([]domain.Transaction, error)
}

var ErrGameNotFound = errors.New("game not found")

type Service struct {
	gameRepo        gameservice.GameRepo
	playerRepo      gameservice.PlayerRepo
	transactionRepo TransactionRepo
}

func New(gameRepo gameservice.GameRepo, playerRepo gameservice.PlayerRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		gameRepo:        gameRepo,
		playerRepo:      playerRepo,
		transactionRepo: transactionRepo,
	}
}

// CalculateResults computes each player's monetary outcome for a game: final
// chips minus buy-ins valued at the game's chip-to-money ratio. Negative
// amounts are owed to the pot, positive amounts are owed by it. The
// computation performs no writes, so repeated calls over unchanged state
// return identical results.
func (s *Service) CalculateResults(ctx context.Context, gameID int) (*domain.Settlement, error) {
	var (
		game    *domain.Game
		entries []domain.RosterEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		game, err = s.gameRepo.FindByID(gctx, gameID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.playerRepo.ListForGame(gctx, gameID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load game for settlement", zap.Error(err))
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	settlement := &domain.Settlement{
		GameID:   game.ID,
		GameName: game.GameName,
		Results:  make([]domain.PlayerResult, 0, len(entries)),
	}
	for _, entry := range entries {
		amount := float64(entry.FinalChips) - float64(entry.BuyIns)*game.ChipToMoneyRatio
		settlement.Results = append(settlement.Results, domain.PlayerResult{
			PlayerID:   entry.PlayerID,
			Username:   entry.Username,
			BuyIns:     entry.BuyIns,
			FinalChips: entry.FinalChips,
			Amount:     amount,
		})
	}
	return settlement, nil
}

// RecordResults computes the settlement and persists one transaction row per
// roster entry for audit. The batch either lands fully or not at all.
func (s *Service) RecordResults(ctx context.Context, gameID int) (*domain.Settlement, error) {
	settlement, err := s.CalculateResults(ctx, gameID)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0, len(settlement.Results))
	for _, result := range settlement.Results {
		transactions = append(transactions, domain.Transaction{
			GameID:   gameID,
			PlayerID: result.PlayerID,
			Amount:   result.Amount,
		})
	}
	if err := s.transactionRepo.SaveAll(ctx, transactions); err != nil {
		zap.L().Error("can't record settlement: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("settlement recorded", zap.Int("game_id", gameID), zap.Int("players", len(transactions)))
	return settlement, nil
}
