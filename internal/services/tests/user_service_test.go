package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret       = "test-secret-key"
	jwtDuration     = 15 * time.Minute
	refreshDuration = 7 * 24 * time.Hour
)

var testUserID = uuid.New() // Use a consistent ID for predictable mocks/results

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockSessions := mock_storage.NewMockSessionStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockSessions, jwtSecret, jwtDuration, refreshDuration)

	repoErrDbConnectionLost := errors.New("database connection lost")

	tests := []struct {
		name          string
		req           *dto.RegisterUserRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.RegisterUserRequest)
		expectedUser  *models.User
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			req: &dto.RegisterUserRequest{
				FullName:    "Test User",
				Email:       "test@example.com",
				PhoneNumber: "9999999999",
				Password:    "password123",
				Role:        "student",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterUserRequest) {
				mockReturnUser := &models.User{
					ID:       testUserID,
					FullName: req.FullName,
					Email:    req.Email,
					Role:     models.UserRoleStudent,
				}
				repo.EXPECT().Create(gomock.Any(), req).Return(mockReturnUser, nil).Times(1)
			},
			expectedUser: &models.User{ID: testUserID, Email: "test@example.com"},
		},
		{
			name: "Duplicate email",
			req: &dto.RegisterUserRequest{
				FullName:    "Test User",
				Email:       "taken@example.com",
				PhoneNumber: "9999999999",
				Password:    "password123",
				Role:        "student",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterUserRequest) {
				repo.EXPECT().Create(gomock.Any(), req).Return(nil, storage.ErrDuplicateEmail).Times(1)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Repository error",
			req: &dto.RegisterUserRequest{
				FullName:    "Test User",
				Email:       "test@example.com",
				PhoneNumber: "9999999999",
				Password:    "password123",
				Role:        "student",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterUserRequest) {
				repo.EXPECT().Create(gomock.Any(), req).Return(nil, repoErrDbConnectionLost).Times(1)
			},
			errorContains: "internal error creating user",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup(mockUserRepo, tc.req)

			user, err := userService.Register(context.Background(), tc.req)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
				return
			}
			if tc.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tc.expectedUser.ID, user.ID)
			assert.Equal(t, tc.expectedUser.Email, user.Email)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockSessions := mock_storage.NewMockSessionStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockSessions, jwtSecret, jwtDuration, refreshDuration)

	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           testUserID,
		Email:        "test@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleRecruiter,
	}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: storedUser.Email}).
			Return(storedUser, nil).Times(1)
		mockSessions.EXPECT().
			Save(gomock.Any(), gomock.Any(), testUserID, refreshDuration).
			Return(nil).Times(1)

		user, pair, err := userService.Login(context.Background(), &dto.LoginRequest{
			Email:    storedUser.Email,
			Password: password,
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, pair)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		// The access token carries the user ID and role.
		claims := &services.Claims{}
		parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, testUserID.String(), claims.Subject)
		assert.Equal(t, models.UserRoleRecruiter, claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: storedUser.Email}).
			Return(storedUser, nil).Times(1)

		user, pair, err := userService.Login(context.Background(), &dto.LoginRequest{
			Email:    storedUser.Email,
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Nil(t, pair)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), &dto.GetUserByEmailRequest{Email: "nobody@example.com"}).
			Return(nil, storage.ErrNotFound).Times(1)

		user, pair, err := userService.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Nil(t, pair)
	})
}

func TestUserService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockSessions := mock_storage.NewMockSessionStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockSessions, jwtSecret, jwtDuration, refreshDuration)

	storedUser := &models.User{ID: testUserID, Email: "test@example.com", Role: models.UserRoleStudent}

	t.Run("Rotates the presented token", func(t *testing.T) {
		oldToken := uuid.NewString()
		mockSessions.EXPECT().Get(gomock.Any(), oldToken).Return(testUserID, nil).Times(1)
		mockUserRepo.EXPECT().
			GetByID(gomock.Any(), &dto.GetUserByIDRequest{ID: testUserID}).
			Return(storedUser, nil).Times(1)
		mockSessions.EXPECT().Delete(gomock.Any(), oldToken).Return(nil).Times(1)
		mockSessions.EXPECT().
			Save(gomock.Any(), gomock.Any(), testUserID, refreshDuration).
			Return(nil).Times(1)

		pair, err := userService.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: oldToken})
		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.NotEqual(t, oldToken, pair.RefreshToken)
	})

	t.Run("Expired session", func(t *testing.T) {
		token := uuid.NewString()
		mockSessions.EXPECT().Get(gomock.Any(), token).Return(uuid.Nil, services.ErrSessionExpired).Times(1)

		pair, err := userService.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: token})
		assert.ErrorIs(t, err, services.ErrSessionExpired)
		assert.Nil(t, pair)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockSessions := mock_storage.NewMockSessionStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockSessions, jwtSecret, jwtDuration, refreshDuration)

	t.Run("Revokes the session", func(t *testing.T) {
		token := uuid.NewString()
		mockSessions.EXPECT().Delete(gomock.Any(), token).Return(nil).Times(1)

		err := userService.Logout(context.Background(), &dto.LogoutRequest{UserID: testUserID, RefreshToken: token})
		assert.NoError(t, err)
	})

	t.Run("No token is a no-op", func(t *testing.T) {
		err := userService.Logout(context.Background(), &dto.LogoutRequest{UserID: testUserID})
		assert.NoError(t, err)
	})
}
