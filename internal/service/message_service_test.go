package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		msg.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockMessageRepo) ListInbox(ctx context.Context, userID uuid.UUID, limit int) ([]models.MessageDetail, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MessageDetail), args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, recipientID)
	return args.Bool(0), args.Error(1)
}

func TestMessageService_Send_Success(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	callerID := uuid.New()
	toUserID := uuid.New()

	users.On("Exists", ctx, toUserID).Return(true, nil)
	messages.On("Create", ctx, mock.AnythingOfType("*models.Message")).Return(nil)

	msg, err := svc.Send(ctx, callerID, toUserID, "Привет! Обменяемся навыками?")

	assert.NoError(t, err)
	assert.Equal(t, callerID, msg.FromUserID)
	assert.Equal(t, toUserID, msg.ToUserID)
}

func TestMessageService_Send_EmptyContent(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	for _, content := range []string{"", "   ", strings.Repeat("x", 5001)} {
		_, err := svc.Send(ctx, uuid.New(), uuid.New(), content)
		assert.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_Send_ToSelf(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	id := uuid.New()
	_, err := svc.Send(ctx, id, id, "привет")

	assert.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestMessageService_Send_RecipientNotFound(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	toUserID := uuid.New()
	users.On("Exists", ctx, toUserID).Return(false, nil)

	_, err := svc.Send(ctx, uuid.New(), toUserID, "привет")

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMessageService_ListInbox(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	userID := uuid.New()
	expected := []models.MessageDetail{
		{Message: models.Message{ID: uuid.New(), Content: "hi"}, SenderUsername: "alice"},
	}
	messages.On("ListInbox", ctx, userID, 50).Return(expected, nil)

	inbox, err := svc.ListInbox(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, inbox, 1)
	assert.Equal(t, "alice", inbox[0].SenderUsername)
}

func TestMessageService_MarkRead_NotRecipient(t *testing.T) {
	messages := new(mockMessageRepo)
	users := new(mockUserChecker)
	svc := NewMessageService(messages, users)
	ctx := context.Background()

	callerID := uuid.New()
	messageID := uuid.New()
	messages.On("MarkRead", ctx, messageID, callerID).Return(false, nil)

	err := svc.MarkRead(ctx, callerID, messageID)

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
