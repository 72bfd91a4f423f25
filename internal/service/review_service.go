package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
	"github.com/ignatzorin/skillswap-backend/internal/validation"
)

// ReviewStorage описывает зависимости сервиса от слоя хранилища.
type ReviewStorage interface {
	Create(ctx context.Context, review *models.Review) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewDetail, error)
	GetAverageRating(ctx context.Context, userID uuid.UUID) (float64, int, error)
}

// ReviewService управляет отзывами об обменах. Агрегаты рейтинга — входные
// данные подбора наставников.
type ReviewService struct {
	reviews ReviewStorage
	users   UserChecker
}

// NewReviewService создаёт сервис отзывов.
func NewReviewService(reviews ReviewStorage, users UserChecker) *ReviewService {
	return &ReviewService{reviews: reviews, users: users}
}

// CreateReview создаёт отзыв от callerID о пользователе toUserID.
func (s *ReviewService) CreateReview(ctx context.Context, callerID, toUserID uuid.UUID, connectionID *uuid.UUID, rating int, comment *string) (*models.Review, error) {
	if err := validation.ValidateRating(rating); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	if callerID == toUserID {
		return nil, apperror.New(apperror.ErrCodeValidation, "нельзя оставить отзыв о себе")
	}

	if comment != nil {
		if err := validation.ValidateLength("комментарий", *comment, 0, validation.MaxCommentLength); err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
		}
	}

	exists, err := s.users.Exists(ctx, toUserID)
	if err != nil {
		return nil, fmt.Errorf("review service: проверка пользователя: %w", err)
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	review := &models.Review{
		FromUserID:   callerID,
		ToUserID:     toUserID,
		ConnectionID: connectionID,
		Rating:       rating,
		Comment:      comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListUserReviews возвращает отзывы о пользователе вместе с агрегатом.
func (s *ReviewService) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]models.ReviewDetail, *models.UserRating, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if reviews == nil {
		reviews = []models.ReviewDetail{}
	}

	avg, count, err := s.reviews.GetAverageRating(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return reviews, &models.UserRating{AverageRating: avg, TotalReviews: count}, nil
}
