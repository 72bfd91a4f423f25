package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
)

type mockConnectionRepo struct {
	mock.Mock
}

func (m *mockConnectionRepo) Create(ctx context.Context, conn *models.Connection) error {
	args := m.Called(ctx, conn)
	if args.Error(0) == nil {
		conn.ID = uuid.New()
		conn.Status = models.ConnectionStatusPending
	}
	return args.Error(0)
}

func (m *mockConnectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Connection), args.Error(1)
}

func (m *mockConnectionRepo) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *mockConnectionRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ConnectionDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConnectionDetail), args.Error(1)
}

type mockProfileChecker struct {
	mock.Mock
}

func (m *mockProfileChecker) HasEntry(ctx context.Context, userID, skillID uuid.UUID, wantToLearn bool) (bool, error) {
	args := m.Called(ctx, userID, skillID, wantToLearn)
	return args.Bool(0), args.Error(1)
}

type mockUserChecker struct {
	mock.Mock
}

func (m *mockUserChecker) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newConnectionService(conns *mockConnectionRepo, profiles *mockProfileChecker, users *mockUserChecker) *ConnectionService {
	return NewConnectionService(conns, profiles, users, NewCacheService())
}

func TestConnectionService_Create_Success(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	callerID := uuid.New()
	in := CreateConnectionInput{
		RecipientID:      uuid.New(),
		InitiatorSkillID: uuid.New(),
		RecipientSkillID: uuid.New(),
	}

	users.On("Exists", ctx, in.RecipientID).Return(true, nil)
	profiles.On("HasEntry", ctx, callerID, in.InitiatorSkillID, false).Return(true, nil)
	profiles.On("HasEntry", ctx, callerID, in.RecipientSkillID, true).Return(true, nil)
	conns.On("Create", ctx, mock.AnythingOfType("*models.Connection")).Return(nil)

	conn, err := svc.Create(ctx, callerID, in)

	assert.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, callerID, conn.InitiatorID)
	assert.Equal(t, models.ConnectionStatusPending, conn.Status)
	conns.AssertExpectations(t)
}

func TestConnectionService_Create_SelfConnection(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	callerID := uuid.New()
	_, err := svc.Create(ctx, callerID, CreateConnectionInput{
		RecipientID:      callerID,
		InitiatorSkillID: uuid.New(),
		RecipientSkillID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	conns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConnectionService_Create_RecipientNotFound(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	callerID := uuid.New()
	recipientID := uuid.New()
	users.On("Exists", ctx, recipientID).Return(false, nil)

	_, err := svc.Create(ctx, callerID, CreateConnectionInput{
		RecipientID:      recipientID,
		InitiatorSkillID: uuid.New(),
		RecipientSkillID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	conns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConnectionService_Create_SkillNotInTeachSet(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	callerID := uuid.New()
	in := CreateConnectionInput{
		RecipientID:      uuid.New(),
		InitiatorSkillID: uuid.New(),
		RecipientSkillID: uuid.New(),
	}

	users.On("Exists", ctx, in.RecipientID).Return(true, nil)
	profiles.On("HasEntry", ctx, callerID, in.InitiatorSkillID, false).Return(false, nil)

	_, err := svc.Create(ctx, callerID, in)

	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "преподаваемых")
	conns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConnectionService_Create_SkillNotInLearnSet(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	callerID := uuid.New()
	in := CreateConnectionInput{
		RecipientID:      uuid.New(),
		InitiatorSkillID: uuid.New(),
		RecipientSkillID: uuid.New(),
	}

	users.On("Exists", ctx, in.RecipientID).Return(true, nil)
	profiles.On("HasEntry", ctx, callerID, in.InitiatorSkillID, false).Return(true, nil)
	profiles.On("HasEntry", ctx, callerID, in.RecipientSkillID, true).Return(false, nil)

	_, err := svc.Create(ctx, callerID, in)

	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, err.Error(), "изучаемых")
	conns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConnectionService_UpdateStatus_Accept(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	recipientID := uuid.New()
	connID := uuid.New()
	conn := &models.Connection{
		ID:          connID,
		InitiatorID: uuid.New(),
		RecipientID: recipientID,
		Status:      models.ConnectionStatusPending,
	}

	conns.On("GetByID", ctx, connID).Return(conn, nil)
	conns.On("UpdateStatusIfPending", ctx, connID, models.ConnectionStatusAccepted).Return(true, nil)

	updated, err := svc.UpdateStatus(ctx, recipientID, connID, models.ConnectionStatusAccepted)

	assert.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, updated.Status)
	conns.AssertExpectations(t)
}

func TestConnectionService_UpdateStatus_InvalidTarget(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	for _, status := range []string{"pending", "completed", "cancelled", ""} {
		_, err := svc.UpdateStatus(ctx, uuid.New(), uuid.New(), status)
		assert.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
	conns.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectionService_UpdateStatus_NotFound(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	connID := uuid.New()
	conns.On("GetByID", ctx, connID).Return(nil, repository.ErrConnectionNotFound)

	_, err := svc.UpdateStatus(ctx, uuid.New(), connID, models.ConnectionStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestConnectionService_UpdateStatus_OnlyRecipient(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	initiatorID := uuid.New()
	connID := uuid.New()
	conn := &models.Connection{
		ID:          connID,
		InitiatorID: initiatorID,
		RecipientID: uuid.New(),
		Status:      models.ConnectionStatusPending,
	}

	conns.On("GetByID", ctx, connID).Return(conn, nil)

	// Инициатор не может принять собственную заявку.
	_, err := svc.UpdateStatus(ctx, initiatorID, connID, models.ConnectionStatusAccepted)

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	conns.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectionService_UpdateStatus_AlreadyProcessed(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	recipientID := uuid.New()
	connID := uuid.New()
	conn := &models.Connection{
		ID:          connID,
		InitiatorID: uuid.New(),
		RecipientID: recipientID,
		Status:      models.ConnectionStatusAccepted,
	}

	conns.On("GetByID", ctx, connID).Return(conn, nil)
	conns.On("UpdateStatusIfPending", ctx, connID, models.ConnectionStatusRejected).Return(false, nil)

	// Условный UPDATE не затронул строк: заявка уже вышла из pending.
	_, err := svc.UpdateStatus(ctx, recipientID, connID, models.ConnectionStatusRejected)

	assert.Error(t, err)
	assert.True(t, apperror.IsInvalidState(err))
}

func TestConnectionService_ListForUser_EmptyAndCached(t *testing.T) {
	conns := new(mockConnectionRepo)
	profiles := new(mockProfileChecker)
	users := new(mockUserChecker)
	svc := newConnectionService(conns, profiles, users)
	ctx := context.Background()

	userID := uuid.New()
	conns.On("ListForUser", ctx, userID).Return([]models.ConnectionDetail(nil), nil).Once()

	list, err := svc.ListForUser(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)

	// Повторный вызов читает из кэша и не трогает хранилище.
	_, err = svc.ListForUser(ctx, userID)
	assert.NoError(t, err)
	conns.AssertNumberOfCalls(t, "ListForUser", 1)
}
