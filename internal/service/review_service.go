package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Boggioo/movielist/internal/models"
	"github.com/Boggioo/movielist/internal/repository"
)

var ErrInvalidRating = errors.New("rating inválido (tiene que estar entre 1 y 10)")

type ReviewService struct {
	reviews *repository.ReviewRepository
	users   *repository.UserRepository
}

func NewReviewService(reviews *repository.ReviewRepository, users *repository.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, users: users}
}

// Upsert crea o actualiza la reseña del usuario para una película
// (una sola reseña por usuario+película).
func (s *ReviewService) Upsert(ctx context.Context, userID, movieID, rating int, comment string) error {
	if rating < 1 || rating > 10 {
		return ErrInvalidRating
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("usuario %d no encontrado", userID)
	}

	rev := &models.ReviewDoc{
		UserID:   userID,
		MovieID:  movieID,
		Username: u.Username,
		Rating:   rating,
		Comment:  comment,
	}
	return s.reviews.Upsert(ctx, rev)
}

func (s *ReviewService) Delete(ctx context.Context, userID, movieID int) error {
	return s.reviews.Delete(ctx, userID, movieID)
}

func (s *ReviewService) ListForMovie(ctx context.Context, movieID, limit, offset int) ([]models.ReviewDoc, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.reviews.FindByMovie(ctx, movieID, limit, offset)
}
