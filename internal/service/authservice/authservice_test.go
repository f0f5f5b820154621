package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokernight/server/internal/domain"
	"github.com/pokernight/server/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)

	service := New(userRepo, hashService)
	defer ctrl.Finish()
	return service, userRepo, hashService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Username already taken",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{Username: "alice"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Error finding user",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedUser:  nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.username, tt.password)

			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Unknown user",
			username: "ghost",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "ghost").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Error finding user",
			username: "alice",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Password mismatch",
			username: "alice",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(context.Background(), "alice").Return(&domain.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.password)

			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}
