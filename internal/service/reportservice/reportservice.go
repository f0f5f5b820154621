package reportservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/service/authservice"
	"github.com/pokernight/server/internal/service/gameservice"
	"github.com/pokernight/server/internal/service/settlementservice"
)

type Service struct {
	userRepo        authservice.UserRepo
	playerRepo      gameservice.PlayerRepo
	transactionRepo settlementservice.TransactionRepo
}

func New(userRepo authservice.UserRepo, playerRepo gameservice.PlayerRepo, transactionRepo settlementservice.TransactionRepo) *Service {
	return &Service{
		userRepo:        userRepo,
		playerRepo:      playerRepo,
		transactionRepo: transactionRepo,
	}
}

// SuggestPlayers returns every registered user. The list backs the roster
// autocomplete, so it is not scoped to any game.
func (s *Service) SuggestPlayers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get user suggestions", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) GameStats(ctx context.Context, gameID int) (*domain.GameStats, error) {
	stats, err := s.playerRepo.GameStats(ctx, gameID)
	if err != nil {
		zap.L().Error("failed to get game stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) UserStats(ctx context.Context, userID int) (*domain.UserStats, error) {
	stats, err := s.playerRepo.UserStats(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) GamePlayers(ctx context.Context, gameID int) ([]domain.RosterEntry, error) {
	entries, err := s.playerRepo.ListForGame(ctx, gameID)
	if err != nil {
		zap.L().Error("failed to get game players", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GameTransactions(ctx context.Context, gameID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByGameID(ctx, gameID)
	if err != nil {
		zap.L().Error("failed to get game transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
