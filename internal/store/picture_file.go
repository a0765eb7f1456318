package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

// filePictureStorage keeps profile pictures as files in one directory.
type filePictureStorage struct {
	dir string
}

// NewFilePictureStorage creates dir if needed and returns a [PictureStorage]
// writing into it.
func NewFilePictureStorage(dir string, logger *logger.Logger) (PictureStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating profile pictures directory: %w", err)
	}
	logger.Debug().Str("dir", dir).Msg("creating file picture storage")
	return &filePictureStorage{dir: dir}, nil
}

// Save writes the picture to a temporary file and renames it over the
// target, so readers never see a half-written picture.
func (s *filePictureStorage) Save(ctx context.Context, name string, picture models.Picture) error {
	log := logger.FromContext(ctx)

	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("%w: invalid picture name %q", ErrPictureNotSaved, name)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Msg("error creating temp file")
		return fmt.Errorf("%w: %w", ErrPictureNotSaved, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(picture.Content); err != nil {
		_ = tmp.Close()
		log.Err(err).Str("func", "*filePictureStorage.Save").Msg("error writing picture")
		return fmt.Errorf("%w: %w", ErrPictureNotSaved, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrPictureNotSaved, err)
	}

	if err = os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "*filePictureStorage.Save").Msg("error moving picture into place")
		return fmt.Errorf("%w: %w", ErrPictureNotSaved, err)
	}

	return nil
}
