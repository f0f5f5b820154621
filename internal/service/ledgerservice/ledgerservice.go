package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pokernight/server/internal/service/gameservice"
)

var (
	ErrNotCasinoMan   = errors.New("only the casino man can update buy-ins")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotSelf        = errors.New("player must verify themselves")
)

type Service struct {
	gameRepo   gameservice.GameRepo
	playerRepo gameservice.PlayerRepo
}

func New(gameRepo gameservice.GameRepo, playerRepo gameservice.PlayerRepo) *Service {
	return &Service{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
	}
}

// UpdateBuyIns overwrites a roster entry's buy-in count. Both checks must
// pass: the caller must be the game's casino man AND must own the roster
// entry being updated. A missing game fails the casino man check.
func (s *Service) UpdateBuyIns(ctx context.Context, userID, gameID, playerID, buyIns int) error {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil || game.CasinoManID != userID {
		zap.L().Info("buy-ins update rejected", zap.Int("game_id", gameID), zap.Int("user_id", userID))
		return ErrNotCasinoMan
	}

	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}
	if player.UserID != userID {
		return ErrNotSelf
	}

	return s.playerRepo.UpdateBuyIns(ctx, gameID, playerID, buyIns)
}

// UpdateFinalChips overwrites a roster entry's final chip count. Any
// authenticated user may set any player's count.
func (s *Service) UpdateFinalChips(ctx context.Context, gameID, playerID, finalChips int) error {
	return s.playerRepo.UpdateFinalChips(ctx, gameID, playerID, finalChips)
}
