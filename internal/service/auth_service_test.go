package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockAuthRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockAuthRepo) UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAuthRepo) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockAuthRepo) GetSessionByToken(ctx context.Context, refreshToken string) (*models.Session, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockAuthRepo) DeleteSession(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 720*time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Password123",
	}, nil)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
	assert.NotEmpty(t, result.TokenPair.RefreshToken)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	existing := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	repo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil)

	_, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
	}, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	// Email свободен, но уникальный индекс срабатывает на вставке:
	// занятое имя или параллельная регистрация с тем же email.
	repo.On("GetByEmail", ctx, "carol@example.com").Return(nil, repository.ErrUserNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(repository.ErrUserDuplicate)

	_, err := svc.Register(ctx, RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "Password123",
	}, nil)

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		_, err := svc.Register(ctx, RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: password,
		}, nil)
		assert.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	passHash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: string(passHash),
	}

	repo.On("GetByEmail", ctx, "bob@example.com").Return(user, nil)
	repo.On("UpdateLastLoginAt", ctx, user.ID).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Login(ctx, LoginInput{Email: "bob@example.com", Password: "Password123"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.TokenPair.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	passHash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: string(passHash)}
	repo.On("GetByEmail", ctx, "bob@example.com").Return(user, nil)

	_, err := svc.Login(ctx, LoginInput{Email: "bob@example.com", Password: "WrongPass1"}, nil)

	assert.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "Password123"}, nil)

	assert.Error(t, err)
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	repo := new(mockAuthRepo)
	tm := newTestTokenManager()
	svc := NewAuthService(repo, tm)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Username: "carol", Email: "carol@example.com"}
	pair, _, refreshExp, err := tm.GeneratePair(user)
	assert.NoError(t, err)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    refreshExp,
	}

	repo.On("GetSessionByToken", ctx, pair.RefreshToken).Return(session, nil)
	repo.On("GetByID", ctx, user.ID).Return(user, nil)
	repo.On("DeleteSession", ctx, pair.RefreshToken).Return(nil)
	repo.On("CreateSession", ctx, mock.AnythingOfType("*models.Session")).Return(nil)

	result, err := svc.Refresh(ctx, pair.RefreshToken, nil)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	repo.AssertCalled(t, "DeleteSession", ctx, pair.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	repo := new(mockAuthRepo)
	svc := NewAuthService(repo, newTestTokenManager())
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "not-a-jwt", nil)

	assert.Error(t, err)
	assert.Equal(t, 401, apperror.StatusFor(err))
}
