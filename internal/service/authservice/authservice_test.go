package authservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/shopmesh/internal/domain"
	"github.com/GlebRadaev/shopmesh/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testTTL = 4 * time.Hour

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, testTTL)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

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
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("pw1").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Password longer than 72 bytes",
			username: "carol",
			password: strings.Repeat("a", 100),
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "carol").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword(strings.Repeat("a", 100)).Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 3
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           3,
				Username:     "carol",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:          "Empty username",
			username:      "",
			password:      "pw1",
			prepareMock:   func() {},
			expectedError: ErrInvalidInput,
		},
		{
			name:          "Empty password",
			username:      "alice",
			password:      "",
			prepareMock:   func() {},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "User already exists",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "User created concurrently",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("pw1").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyExists)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "Error finding user",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("pw1").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("pw1").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

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
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "pw1").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "alice",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:          "Missing fields",
			username:      "alice",
			password:      "",
			prepareMock:   func() {},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Invalid credentials - user not found",
			username: "ghost",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, nil)
				passwordHasher.EXPECT().ComparePassword(dummyHash, "pw1").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			username: "alice",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Store failure",
			username: "alice",
			password: "pw1",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	user := &domain.User{ID: 1, Username: "alice"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), "alice", gomock.Any()).
					DoAndReturn(func(_ int64, _ string, exp time.Time) (string, error) {
						assert.WithinDuration(t, time.Now().Add(testTTL), exp, time.Minute)
						return "generated-token", nil
					})
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), "alice", gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	service, userRepo, _, jwtService := NewMock(t)
	claims := &auth.Claims{Username: "alice"}
	claims.Subject = "1"

	tests := []struct {
		name          string
		token         string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:  "Known user",
			token: "good",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good").Return(claims, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
			},
			expectedUser: &domain.User{ID: 1, Username: "alice"},
		},
		{
			name:  "Expired token",
			token: "stale",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("stale").Return(nil, auth.ErrTokenExpired)
			},
			expectedError: auth.ErrTokenExpired,
		},
		{
			name:  "Invalid token",
			token: "broken",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("broken").Return(nil, auth.ErrInvalidToken)
			},
			expectedError: auth.ErrInvalidToken,
		},
		{
			name:  "Subject no longer resolves",
			token: "orphan",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("orphan").Return(claims, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Profile(context.Background(), tt.token)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestLoginWithRealHashing(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wrong    string
	}{
		{
			name:     "Short password",
			password: "pw1",
			wrong:    "wrong",
		},
		{
			name:     "Password longer than 72 bytes",
			password: strings.Repeat("a", 100),
			wrong:    strings.Repeat("a", 99) + "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			jwtService, err := auth.NewJWTService("secret")
			require.NoError(t, err)
			service := New(repo, &auth.HashService{Cost: bcrypt.MinCost}, jwtService, testTTL)

			var stored *domain.User
			repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				user.ID = 9
				stored = user
				return user, nil
			})

			_, err = service.Register(context.Background(), "alice", tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, stored.PasswordHash)

			repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil).Times(2)

			user, err := service.Authenticate(context.Background(), "alice", tt.password)
			require.NoError(t, err)

			_, err = service.Authenticate(context.Background(), "alice", tt.wrong)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			token, err := service.GenerateToken(user)
			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "9", claims.Subject)
			assert.Equal(t, "alice", claims.Username)
		})
	}
}
