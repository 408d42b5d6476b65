package services

import (
	"context"
	"errors"

	"chambaBack/internal/models"
	"chambaBack/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
	RequestRepo  *repositories.RequestRepository
}

// AddToFavorites bookmarks a request. Re-adding an existing favorite is
// a no-op; favorites are advisory and never affect request state.
func (s *FavoriteService) AddToFavorites(ctx context.Context, userID int, requestID string) error {
	if _, err := s.RequestRepo.GetRequestByID(ctx, requestID, 0); err != nil {
		return err
	}
	err := s.FavoriteRepo.AddToFavorites(ctx, userID, requestID)
	if errors.Is(err, models.ErrDuplicateFavorite) {
		return nil
	}
	return err
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, userID int, requestID string) error {
	return s.FavoriteRepo.RemoveFromFavorites(ctx, userID, requestID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID int, requestID string) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, requestID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID int) ([]models.RequestFavorite, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userID)
}
