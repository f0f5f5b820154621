package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// SaveAll inserts one settlement row per player inside a single transaction,
// so a recorded settlement is never partial.
func (r *Repository) SaveAll(ctx context.Context, transactions []domain.Transaction) error {
	query := `
		INSERT INTO transactions (game_id, player_id, amount)
		VALUES ($1, $2, $3)
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, txn := range transactions {
			if _, err := r.db.Exec(ctx, query, txn.GameID, txn.PlayerID, txn.Amount); err != nil {
				zap.L().Error("can't save transaction", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByGameID(ctx context.Context, gameID int) ([]domain.Transaction, error) {
	query := `
		SELECT id, game_id, player_id, amount, created_at
		FROM transactions
		WHERE game_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(&txn.ID, &txn.GameID, &txn.PlayerID, &txn.Amount, &txn.CreatedAt); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}
