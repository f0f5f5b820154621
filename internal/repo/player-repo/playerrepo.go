package playerrepo

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

func (r *Repository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	query := `
		INSERT INTO players (game_id, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, player.GameID, player.UserID).Scan(&player.ID)
	if err != nil {
		zap.L().Error("can't save player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Player, error) {
	query := `
		SELECT id, game_id, user_id, buy_ins, final_chips
		FROM players
		WHERE id = $1
	`
	var player domain.Player
	err := r.db.QueryRow(ctx, query, id).
		Scan(&player.ID, &player.GameID, &player.UserID, &player.BuyIns, &player.FinalChips)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find player", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *Repository) FindByGameAndUser(ctx context.Context, gameID, userID int) (*domain.Player, error) {
	query := `
		SELECT id, game_id, user_id, buy_ins, final_chips
		FROM players
		WHERE game_id = $1 AND user_id = $2
	`
	var player domain.Player
	err := r.db.QueryRow(ctx, query, gameID, userID).
		Scan(&player.ID, &player.GameID, &player.UserID, &player.BuyIns, &player.FinalChips)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find player by game and user", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

// UpdateBuyIns overwrites the buy-in count, scoped by both player and game.
func (r *Repository) UpdateBuyIns(ctx context.Context, gameID, playerID, buyIns int) error {
	query := `
		UPDATE players
		SET buy_ins = $1
		WHERE id = $2 AND game_id = $3
	`
	if _, err := r.db.Exec(ctx, query, buyIns, playerID, gameID); err != nil {
		zap.L().Error("can't update buy-ins", zap.Error(err))
		return err
	}
	return nil
}

// UpdateFinalChips overwrites the final chip count, scoped by both player and game.
func (r *Repository) UpdateFinalChips(ctx context.Context, gameID, playerID, finalChips int) error {
	query := `
		UPDATE players
		SET final_chips = $1
		WHERE id = $2 AND game_id = $3
	`
	if _, err := r.db.Exec(ctx, query, finalChips, playerID, gameID); err != nil {
		zap.L().Error("can't update final chips", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListForGame(ctx context.Context, gameID int) ([]domain.RosterEntry, error) {
	query := `
		SELECT p.id, u.username, p.buy_ins, p.final_chips
		FROM players p
		JOIN users u ON p.user_id = u.id
		WHERE p.game_id = $1
		ORDER BY p.id
	`
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("can't list players for game", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RosterEntry
	for rows.Next() {
		var entry domain.RosterEntry
		if err := rows.Scan(&entry.PlayerID, &entry.Username, &entry.BuyIns, &entry.FinalChips); err != nil {
			zap.L().Error("can't scan roster row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GameStats counts roster entries and sums buy-ins for one game. An empty
// roster yields zeros, not NULLs.
func (r *Repository) GameStats(ctx context.Context, gameID int) (*domain.GameStats, error) {
	query := `
		SELECT COUNT(id), COALESCE(SUM(buy_ins), 0)
		FROM players
		WHERE game_id = $1
	`
	var stats domain.GameStats
	err := r.db.QueryRow(ctx, query, gameID).Scan(&stats.TotalPlayers, &stats.TotalBuyIns)
	if err != nil {
		zap.L().Error("can't fetch game stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// UserStats counts distinct games joined and sums buy-ins across all games.
func (r *Repository) UserStats(ctx context.Context, userID int) (*domain.UserStats, error) {
	query := `
		SELECT COUNT(DISTINCT game_id), COALESCE(SUM(buy_ins), 0)
		FROM players
		WHERE user_id = $1
	`
	var stats domain.UserStats
	err := r.db.QueryRow(ctx, query, userID).Scan(&stats.TotalGames, &stats.TotalBuyIns)
	if err != nil {
		zap.L().Error("can't fetch user stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
