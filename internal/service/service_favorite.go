package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository

	// imagesBaseURL prefixes recipe image file names in listings.
	imagesBaseURL string

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, imagesBaseURL string, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		imagesBaseURL:      strings.TrimRight(imagesBaseURL, "/"),
		logger:             logger,
	}
}

// AddFavorite is idempotent: bookmarking a recipe twice keeps one bookmark.
func (s *favoriteService) AddFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error {
	if err := s.favoriteRepository.AddFavorite(ctx, userID, ref.RecipeID.Int64()); err != nil {
		logger.FromContext(ctx).Err(err).Int64("recipe_id", ref.RecipeID.Int64()).Msg("adding favorite failed")
		return fmt.Errorf("adding favorite failed: %w", err)
	}

	return nil
}

// RemoveFavorite succeeds even when the recipe was not bookmarked.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error {
	if err := s.favoriteRepository.RemoveFavorite(ctx, userID, ref.RecipeID.Int64()); err != nil {
		logger.FromContext(ctx).Err(err).Int64("recipe_id", ref.RecipeID.Int64()).Msg("removing favorite failed")
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}

// ListFavorites returns the bookmarked recipes with image names turned into
// URLs under the configured base URL.
func (s *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.favoriteRepository.ListFavorites(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing favorites failed")
		return nil, fmt.Errorf("listing favorites failed: %w", err)
	}

	for i := range recipes {
		recipes[i].Image = s.imageURL(recipes[i].Image)
	}

	return recipes, nil
}

func (s *favoriteService) IsFavorited(ctx context.Context, userID int64, ref models.RecipeRef) (bool, error) {
	ok, err := s.favoriteRepository.IsFavorited(ctx, userID, ref.RecipeID.Int64())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("recipe_id", ref.RecipeID.Int64()).Msg("favorite lookup failed")
		return false, fmt.Errorf("favorite lookup failed: %w", err)
	}

	return ok, nil
}

func (s *favoriteService) imageURL(image *string) *string {
	if image == nil || *image == "" {
		return nil
	}

	url := s.imagesBaseURL + "/" + *image
	return &url
}
