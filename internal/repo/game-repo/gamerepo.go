package gamerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByName(ctx context.Context, name string) (*domain.Game, error) {
	query := `
		SELECT id, game_name, chip_to_money_ratio, casino_man_id, created_at
		FROM games
		WHERE game_name = $1
	`
	var game domain.Game
	err := repo.db.QueryRow(ctx, query, name).
		Scan(&game.ID, &game.GameName, &game.ChipToMoneyRatio, &game.CasinoManID, &game.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find game by name", zap.Error(err))
		return nil, err
	}
	return &game, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.Game, error) {
	query := `
		SELECT id, game_name, chip_to_money_ratio, casino_man_id, created_at
		FROM games
		WHERE id = $1
	`
	var game domain.Game
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&game.ID, &game.GameName, &game.ChipToMoneyRatio, &game.CasinoManID, &game.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return &game, nil
}

func (repo *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
		INSERT INTO games (game_name, chip_to_money_ratio, casino_man_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, game.GameName, game.ChipToMoneyRatio, game.CasinoManID).
		Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		zap.L().Error("can't save game", zap.Error(err))
		return nil, err
	}
	return game, nil
}
