package repo

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pokernight/server/internal/pg"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB, pg.NewMockTXManager(ctrl))

	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.GameRepo)
	assert.NotNil(t, repos.PlayerRepo)
	assert.NotNil(t, repos.TransactionRepo)
}
