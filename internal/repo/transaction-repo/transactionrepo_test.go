package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_SaveAll(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	transactions := []domain.Transaction{
		{GameID: 1, PlayerID: 10, Amount: 375},
		{GameID: 1, PlayerID: 11, Amount: -50},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves every row in one transaction",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (game_id, player_id, amount)")).
					WithArgs(1, 10, 375.0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (game_id, player_id, amount)")).
					WithArgs(1, 11, -50.0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Insert error aborts the batch",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (game_id, player_id, amount)")).
					WithArgs(1, 10, 375.0).
					WillReturnError(errors.New("insert failed"))
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SaveAll(context.Background(), transactions)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByGameID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		gameID    int
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name:   "Transactions found",
			gameID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "game_id", "player_id", "amount", "created_at"}).
					AddRow(2, 1, 11, -50.0, timeNow).
					AddRow(1, 1, 10, 375.0, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id, player_id, amount, created_at")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Transaction{
				{ID: 2, GameID: 1, PlayerID: 11, Amount: -50.0, CreatedAt: timeNow},
				{ID: 1, GameID: 1, PlayerID: 10, Amount: 375.0, CreatedAt: timeNow},
			},
		},
		{
			name:   "Database error",
			gameID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id, player_id, amount, created_at")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:   "Scan row error",
			gameID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "game_id", "player_id", "amount", "created_at"}).
					AddRow(1, 1, 10, "invalid_value", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id, player_id, amount, created_at")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByGameID(context.Background(), tt.gameID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
