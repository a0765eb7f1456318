package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

const profilePictureNameFormat = "%d_profile_picture"

type profileService struct {
	userRepository store.UserRepository
	pictureStorage store.PictureStorage

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, pictureStorage store.PictureStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		pictureStorage: pictureStorage,
		logger:         logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return models.Profile{
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

// UploadProfilePicture stores the picture under "<userID>_profile_picture",
// replacing any earlier upload, and records the name on the user.
func (s *profileService) UploadProfilePicture(ctx context.Context, userID int64, picture models.Picture) (string, error) {
	log := logger.FromContext(ctx)
	name := fmt.Sprintf(profilePictureNameFormat, userID)

	if err := s.pictureStorage.Save(ctx, name, picture); err != nil {
		log.Err(err).Str("name", name).Msg("saving profile picture failed")
		return "", err
	}

	if err := s.userRepository.UpdateProfilePicture(ctx, userID, name); err != nil {
		log.Err(err).Str("name", name).Msg("recording profile picture failed")
		return "", fmt.Errorf("recording profile picture failed: %w", err)
	}

	log.Info().Str("name", name).Int64("size", picture.Size()).Msg("profile picture uploaded")
	return name, nil
}
