package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

type preferenceService struct {
	healthLabelRepository store.HealthLabelRepository

	logger *logger.Logger
}

func NewPreferenceService(healthLabelRepository store.HealthLabelRepository, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		healthLabelRepository: healthLabelRepository,
		logger:                logger,
	}
}

// SaveRestrictions replaces the user's restrictions with the submitted set.
// Repeated ids are stored once.
func (s *preferenceService) SaveRestrictions(ctx context.Context, userID int64, req models.DietaryRestrictionsRequest) error {
	var ids []int64
	if req.SelectedRestrictions != nil {
		ids = slices.Clone([]int64(*req.SelectedRestrictions))
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	if err := s.healthLabelRepository.ReplaceUserRestrictions(ctx, userID, ids); err != nil {
		logger.FromContext(ctx).Err(err).Ints64("label_ids", ids).Msg("saving dietary restrictions failed")
		return fmt.Errorf("saving dietary restrictions failed: %w", err)
	}

	return nil
}

func (s *preferenceService) GetUserLabels(ctx context.Context, userID int64) ([]string, error) {
	labels, err := s.healthLabelRepository.ListUserLabels(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing user health labels failed")
		return nil, fmt.Errorf("listing user health labels failed: %w", err)
	}

	return labels, nil
}

// ResolveLabelIDs splits labels on commas, trims the names and drops empty
// ones. Names missing from the catalog are skipped.
func (s *preferenceService) ResolveLabelIDs(ctx context.Context, labels string) ([]int64, error) {
	names := make([]string, 0)
	for _, name := range strings.Split(labels, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return []int64{}, nil
	}

	ids, err := s.healthLabelRepository.FindLabelIDs(ctx, names)
	if err != nil {
		logger.FromContext(ctx).Err(err).Strs("labels", names).Msg("resolving health label ids failed")
		return nil, fmt.Errorf("resolving health label ids failed: %w", err)
	}

	return ids, nil
}

func (s *preferenceService) ListAllLabels(ctx context.Context) ([]string, error) {
	labels, err := s.healthLabelRepository.ListAllLabels(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing health labels failed")
		return nil, fmt.Errorf("listing health labels failed: %w", err)
	}

	return labels, nil
}
