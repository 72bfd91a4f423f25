package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/validation"
)

// Максимум сообщений в одной выдаче входящих.
const inboxLimit = 50

// MessageStorage описывает зависимости сервиса от слоя хранилища.
type MessageStorage interface {
	Create(ctx context.Context, msg *models.Message) error
	ListInbox(ctx context.Context, userID uuid.UUID, limit int) ([]models.MessageDetail, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (bool, error)
}

// MessageService — личные сообщения. Доставка по запросу: клиент
// периодически запрашивает входящие.
type MessageService struct {
	messages MessageStorage
	users    UserChecker
}

// NewMessageService создаёт сервис сообщений.
func NewMessageService(messages MessageStorage, users UserChecker) *MessageService {
	return &MessageService{messages: messages, users: users}
}

// Send отправляет сообщение от callerID.
func (s *MessageService) Send(ctx context.Context, callerID, toUserID uuid.UUID, content string) (*models.Message, error) {
	if err := validation.ValidateMessageContent(content); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	if callerID == toUserID {
		return nil, apperror.New(apperror.ErrCodeValidation, "нельзя отправить сообщение самому себе")
	}

	exists, err := s.users.Exists(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("message service: проверка получателя: %w", err)
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	msg := &models.Message{
		FromUserID: callerID,
		ToUserID:   toUserID,
		Content:    content,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// ListInbox возвращает входящие пользователя, новые первыми.
func (s *MessageService) ListInbox(ctx context.Context, userID uuid.UUID) ([]models.MessageDetail, error) {
	messages, err := s.messages.ListInbox(ctx, userID, inboxLimit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.MessageDetail{}
	}
	return messages, nil
}

// MarkRead отмечает входящее сообщение прочитанным от имени callerID.
func (s *MessageService) MarkRead(ctx context.Context, callerID, messageID uuid.UUID) error {
	ok, err := s.messages.MarkRead(ctx, messageID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.New(apperror.ErrCodeNotFound, "сообщение не найдено")
	}
	return nil
}
