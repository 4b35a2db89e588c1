package service

import (
	"context"
	"errors"
	"time"

	"github.com/Boggioo/movielist/internal/models"
	"github.com/Boggioo/movielist/internal/repository"
)

// ErrMovieNotFound: el proveedor no devolvió la película (caído o id
// inexistente), así que no hay título/poster para denormalizar.
var ErrMovieNotFound = errors.New("película no encontrada en el proveedor")

type FavoriteService struct {
	favs   *repository.FavoriteRepository
	movies *MovieService
}

func NewFavoriteService(favs *repository.FavoriteRepository, movies *MovieService) *FavoriteService {
	return &FavoriteService{favs: favs, movies: movies}
}

// Add agrega la película a los favoritos del usuario. Si ya estaba es
// un no-op. El título y el poster se piden al proveedor al momento de
// agregar.
func (s *FavoriteService) Add(ctx context.Context, userID, movieID int) (*models.FavoriteDoc, error) {
	existing, err := s.favs.FindOne(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	detail := s.movies.Details(ctx, movieID)
	if detail == nil {
		return nil, ErrMovieNotFound
	}

	f := &models.FavoriteDoc{
		UserID:     userID,
		MovieID:    movieID,
		Title:      detail.Title,
		PosterPath: detail.PosterPath,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.favs.Insert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, movieID int) error {
	return s.favs.Delete(ctx, userID, movieID)
}

func (s *FavoriteService) List(ctx context.Context, userID int) ([]models.FavoriteDoc, error) {
	return s.favs.FindByUser(ctx, userID)
}
