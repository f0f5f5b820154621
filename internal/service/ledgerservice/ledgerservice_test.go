package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/internal/service/gameservice"
)

func NewMock(t *testing.T) (*Service, *gameservice.MockGameRepo, *gameservice.MockPlayerRepo) {
	ctrl := gomock.NewController(t)
	gameRepo := gameservice.NewMockGameRepo(ctrl)
	playerRepo := gameservice.NewMockPlayerRepo(ctrl)

	service := New(gameRepo, playerRepo)
	defer ctrl.Finish()
	return service, gameRepo, playerRepo
}

func TestUpdateBuyIns(t *testing.T) {
	service, gameRepo, playerRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		gameID        int
		playerID      int
		buyIns        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Casino man updates own entry",
			userID:   7,
			gameID:   1,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Game{ID: 1, CasinoManID: 7}, nil)
				playerRepo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Player{ID: 10, GameID: 1, UserID: 7}, nil)
				playerRepo.EXPECT().UpdateBuyIns(context.Background(), 1, 10, 4).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Caller is not the casino man",
			userID:   2,
			gameID:   1,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Game{ID: 1, CasinoManID: 7}, nil)
			},
			expectedError: ErrNotCasinoMan,
		},
		{
			name:     "Missing game fails the casino man check",
			userID:   7,
			gameID:   99,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)
			},
			expectedError: ErrNotCasinoMan,
		},
		{
			name:     "Player not found",
			userID:   7,
			gameID:   1,
			playerID: 99,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Game{ID: 1, CasinoManID: 7}, nil)
				playerRepo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)
			},
			expectedError: ErrPlayerNotFound,
		},
		{
			name:     "Casino man updates someone else's entry",
			userID:   7,
			gameID:   1,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Game{ID: 1, CasinoManID: 7}, nil)
				playerRepo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Player{ID: 10, GameID: 1, UserID: 2}, nil)
			},
			expectedError: ErrNotSelf,
		},
		{
			name:     "Error finding game",
			userID:   7,
			gameID:   1,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error updating buy-ins",
			userID:   7,
			gameID:   1,
			playerID: 10,
			buyIns:   4,
			prepareMock: func() {
				gameRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Game{ID: 1, CasinoManID: 7}, nil)
				playerRepo.EXPECT().FindByID(context.Background(), 10).Return(&domain.Player{ID: 10, GameID: 1, UserID: 7}, nil)
				playerRepo.EXPECT().UpdateBuyIns(context.Background(), 1, 10, 4).Return(errors.New("update failed"))
			},
			expectedError: errors.New("update failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.UpdateBuyIns(context.Background(), tt.userID, tt.gameID, tt.playerID, tt.buyIns)

			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestUpdateFinalChips(t *testing.T) {
	service, _, playerRepo := NewMock(t)

	tests := []struct {
		name          string
		gameID        int
		playerID      int
		finalChips    int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful update",
			gameID:     1,
			playerID:   10,
			finalChips: 400,
			prepareMock: func() {
				playerRepo.EXPECT().UpdateFinalChips(context.Background(), 1, 10, 400).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "Error updating final chips",
			gameID:     1,
			playerID:   10,
			finalChips: 400,
			prepareMock: func() {
				playerRepo.EXPECT().UpdateFinalChips(context.Background(), 1, 10, 400).Return(errors.New("update failed"))
			},
			expectedError: errors.New("update failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.UpdateFinalChips(context.Background(), tt.gameID, tt.playerID, tt.finalChips)

			assert.Equal(t, tt.expectedError, err)
		})
	}
}
