package gameservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/service/authservice"
)

type GameRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Game, error)
	FindByID(ctx context.Context, id int) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
}

type PlayerRepo interface {
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	FindByID(ctx context.Context, id int) (*domain.Player, error)
	FindByGameAndUser(ctx context.Context, gameID, userID int) (*domain.Player, error)
	UpdateBuyIns(ctx context.Context, gameID, playerID, buyIns int) error
	UpdateFinalChips(ctx context.Context, gameID, playerID, finalChips int) error
	ListForGame(ctx context.Context, gameID int) ([]domain.RosterEntry, error)
	GameStats(ctx context.Context, gameID int) (*domain.GameStats, error)
	UserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

const (
	// CasinoManRandom picks a uniformly random registered user as the banker.
	CasinoManRandom = "random"
	// CasinoManSelect uses the explicitly named user as the banker.
	CasinoManSelect = "select"
)

var (
	ErrGameNameTaken     = errors.New("game name already exists")
	ErrInvalidCasinoMan  = errors.New("invalid casino man selection")
	ErrCasinoManNotFound = errors.New("casino man not found")
	ErrNoUsers           = errors.New("no users to pick a casino man from")
	ErrGameNotFound      = errors.New("game not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrPlayerInGame      = errors.New("player already added to game")
)

type Service struct {
	gameRepo   GameRepo
	userRepo   authservice.UserRepo
	playerRepo PlayerRepo
}

func New(gameRepo GameRepo, userRepo authservice.UserRepo, playerRepo PlayerRepo) *Service {
	return &Service{
		gameRepo:   gameRepo,
		userRepo:   userRepo,
		playerRepo: playerRepo,
	}
}

// CreateGame persists a game with its banker resolved from the selection. The
// banker is fixed here and never changes afterwards.
func (s *Service) CreateGame(ctx context.Context, name string, ratio float64, casinoManType string, selectedID int) (*domain.Game, error) {
	existingGame, err := s.gameRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("can't find game: ", zap.Error(err))
		return nil, err
	}
	if existingGame != nil {
		zap.L().Info("game name already taken", zap.String("game_name", name))
		return nil, ErrGameNameTaken
	}

	casinoManID, err := s.resolveCasinoMan(ctx, casinoManType, selectedID)
	if err != nil {
		return nil, err
	}

	game := &domain.Game{
		GameName:         name,
		ChipToMoneyRatio: ratio,
		CasinoManID:      casinoManID,
	}
	newGame, err := s.gameRepo.Create(ctx, game)
	if err != nil {
		zap.L().Error("can't create game: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("game created", zap.String("game_name", name), zap.Int("casino_man_id", casinoManID))
	return newGame, nil
}

func (s *Service) resolveCasinoMan(ctx context.Context, casinoManType string, selectedID int) (int, error) {
	switch {
	case casinoManType == CasinoManRandom:
		user, err := s.userRepo.PickRandom(ctx)
		if err != nil {
			zap.L().Error("can't pick random casino man: ", zap.Error(err))
			return 0, err
		}
		if user == nil {
			return 0, ErrNoUsers
		}
		return user.ID, nil
	case casinoManType == CasinoManSelect && selectedID != 0:
		user, err := s.userRepo.FindByID(ctx, selectedID)
		if err != nil {
			zap.L().Error("can't find selected casino man: ", zap.Error(err))
			return 0, err
		}
		if user == nil {
			return 0, ErrCasinoManNotFound
		}
		return user.ID, nil
	default:
		return 0, ErrInvalidCasinoMan
	}
}

// AddPlayer puts a user on a game's roster with zero buy-ins and zero final
// chips. A user can be on each roster at most once.
func (s *Service) AddPlayer(ctx context.Context, gameID, userID int) (*domain.Player, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existingPlayer, err := s.playerRepo.FindByGameAndUser(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	if existingPlayer != nil {
		zap.L().Info("player already in game", zap.Int("game_id", gameID), zap.Int("user_id", userID))
		return nil, ErrPlayerInGame
	}

	player := &domain.Player{
		GameID: gameID,
		UserID: userID,
	}
	newPlayer, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		zap.L().Error("can't add player: ", zap.Error(err))
		return nil, err
	}
	return newPlayer, nil
}
