package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

// fridgeService resolves user-typed ingredient names against the catalog
// and keeps the per-user fridge list.
type fridgeService struct {
	ingredientRepository store.IngredientRepository
	fridgeRepository     store.FridgeRepository

	logger *logger.Logger
}

func NewFridgeService(ingredientRepository store.IngredientRepository, fridgeRepository store.FridgeRepository, logger *logger.Logger) FridgeService {
	return &fridgeService{
		ingredientRepository: ingredientRepository,
		fridgeRepository:     fridgeRepository,
		logger:               logger,
	}
}

func (s *fridgeService) SearchIngredients(ctx context.Context, query string) ([]string, error) {
	names, err := s.ingredientRepository.SearchIngredients(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("ingredient search failed")
		return nil, fmt.Errorf("ingredient search failed: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoIngredientOptions
	}

	return names, nil
}

// SaveIngredient inserts the ingredient or overwrites its quantity.
func (s *fridgeService) SaveIngredient(ctx context.Context, userID int64, req models.FridgeEntryRequest) error {
	log := logger.FromContext(ctx)

	ingredient, err := s.ingredientRepository.ResolveIngredient(ctx, req.Name)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("ingredient resolution failed")
		return fmt.Errorf("ingredient resolution failed: %w", err)
	}

	quantity := int(req.Quantity.Int64())
	if err = s.fridgeRepository.UpsertFridgeItem(ctx, userID, ingredient.ID, quantity); err != nil {
		log.Err(err).Int64("ingredient_id", ingredient.ID).Msg("saving fridge item failed")
		return fmt.Errorf("saving fridge item failed: %w", err)
	}

	log.Debug().Str("ingredient", ingredient.Name).Int("quantity", quantity).Msg("fridge updated")
	return nil
}

func (s *fridgeService) ListIngredients(ctx context.Context, userID int64) ([]models.FridgeItem, error) {
	items, err := s.fridgeRepository.ListFridgeItems(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing fridge items failed")
		return nil, fmt.Errorf("listing fridge items failed: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyFridge
	}

	return items, nil
}

func (s *fridgeService) DeleteIngredient(ctx context.Context, userID int64, req models.DeleteIngredientRequest) ([]models.FridgeItem, error) {
	log := logger.FromContext(ctx)

	ingredient, err := s.ingredientRepository.ResolveIngredient(ctx, req.Name)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("ingredient resolution failed")
		return nil, fmt.Errorf("ingredient resolution failed: %w", err)
	}

	if err = s.fridgeRepository.DeleteFridgeItem(ctx, userID, ingredient.ID); err != nil {
		log.Err(err).Int64("ingredient_id", ingredient.ID).Msg("deleting fridge item failed")
		return nil, fmt.Errorf("deleting fridge item failed: %w", err)
	}

	items, err := s.fridgeRepository.ListFridgeItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing fridge items after delete failed")
		return nil, fmt.Errorf("listing fridge items failed: %w", err)
	}

	return items, nil
}
