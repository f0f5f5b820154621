package settlementservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/service/gameservice"
)

func NewMock(t *testing.T) (*Service, *gameservice.MockGameRepo, *gameservice.MockPlayerRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	gameRepo := gameservice.NewMockGameRepo(ctrl)
	playerRepo := gameservice.NewMockPlayerRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)

	service := New(gameRepo, playerRepo, transactionRepo)
	defer ctrl.Finish()
	return service, gameRepo, playerRepo, transactionRepo
}

func TestCalculateResults(t *testing.T) {
	service, gameRepo, playerRepo, _ := NewMock(t)

	game := &domain.Game{ID: 1, GameName: "friday", ChipToMoneyRatio: 0.25, CasinoManID: 7}
	roster := []domain.RosterEntry{
		{PlayerID: 10, Username: "bob", BuyIns: 100, FinalChips: 400},
		{PlayerID: 11, Username: "alice", BuyIns: 200, FinalChips: 0},
	}

	tests := []struct {
		name               string
		gameID             int
		prepareMock        func()
		expectedSettlement *domain.Settlement
		expectedError      error
	}{
		{
			name:   "Settlement with winners and losers",
			gameID: 1,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(roster, nil)
			},
			expectedSettlement: &domain.Settlement{
				GameID:   1,
				GameName: "friday",
				Results: []domain.PlayerResult{
					{PlayerID: 10, Username: "bob", BuyIns: 100, FinalChips: 400, Amount: 375},
					{PlayerID: 11, Username: "alice", BuyIns: 200, FinalChips: 0, Amount: -50},
				},
			},
			expectedError: nil,
		},
		{
			name:   "Empty roster",
			gameID: 1,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(nil, nil)
			},
			expectedSettlement: &domain.Settlement{
				GameID:   1,
				GameName: "friday",
				Results:  []domain.PlayerResult{},
			},
			expectedError: nil,
		},
		{
			name:   "Game not found",
			gameID: 99,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 99).Return(nil, nil)
			},
			expectedSettlement: nil,
			expectedError:      ErrGameNotFound,
		},
		{
			name:   "Error loading roster",
			gameID: 1,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil).AnyTimes()
				playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedSettlement: nil,
			expectedError:      errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			settlement, err := service.CalculateResults(context.Background(), tt.gameID)

			assert.Equal(t, tt.expectedSettlement, settlement)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestCalculateResultsIsIdempotent(t *testing.T) {
	service, gameRepo, playerRepo, _ := NewMock(t)

	game := &domain.Game{ID: 1, GameName: "friday", ChipToMoneyRatio: 0.25, CasinoManID: 7}
	roster := []domain.RosterEntry{
		{PlayerID: 10, Username: "bob", BuyIns: 100, FinalChips: 400},
	}
	gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil).Times(2)
	playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(roster, nil).Times(2)

	first, err := service.CalculateResults(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.CalculateResults(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 375.0, first.Results[0].Amount)
}

func TestRecordResults(t *testing.T) {
	service, gameRepo, playerRepo, transactionRepo := NewMock(t)

	game := &domain.Game{ID: 1, GameName: "friday", ChipToMoneyRatio: 0.25, CasinoManID: 7}
	roster := []domain.RosterEntry{
		{PlayerID: 10, Username: "bob", BuyIns: 100, FinalChips: 400},
		{PlayerID: 11, Username: "alice", BuyIns: 200, FinalChips: 0},
	}

	tests := []struct {
		name          string
		gameID        int
		prepareMock   func()
		expectError   bool
		expectedError error
	}{
		{
			name:   "Records one transaction per player",
			gameID: 1,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(roster, nil)
				transactionRepo.EXPECT().SaveAll(context.Background(), []domain.Transaction{
					{GameID: 1, PlayerID: 10, Amount: 375},
					{GameID: 1, PlayerID: 11, Amount: -50},
				}).Return(nil)
			},
			expectError: false,
		},
		{
			name:   "Game not found",
			gameID: 99,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 99).Return(nil, nil)
			},
			expectError:   true,
			expectedError: ErrGameNotFound,
		},
		{
			name:   "Error saving transactions",
			gameID: 1,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(gomock.Any(), 1).Return(game, nil)
				playerRepo.EXPECT().ListForGame(gomock.Any(), 1).Return(roster, nil)
				transactionRepo.EXPECT().SaveAll(context.Background(), gomock.Any()).Return(errors.New("insert failed"))
			},
			expectError:   true,
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			settlement, err := service.RecordResults(context.Background(), tt.gameID)

			if tt.expectError {
				assert.Nil(t, settlement)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "friday", settlement.GameName)
				assert.Len(t, settlement.Results, 2)
			}
		})
	}
}
