// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
)

// Storages bundles every repository and the picture storage used by the
// service layer.
type Storages struct {
	UserRepository        UserRepository
	IngredientRepository  IngredientRepository
	FridgeRepository      FridgeRepository
	HealthLabelRepository HealthLabelRepository
	FavoriteRepository    FavoriteRepository
	RecipeRepository      RecipeRepository
	PictureStorage        PictureStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// picture storage: S3 when a bucket is configured, the local directory
// otherwise.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	pictures, err := newPictureStorage(ctx, cfg.Storage, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		IngredientRepository:  NewIngredientRepository(db, log),
		FridgeRepository:      NewFridgeRepository(db, log),
		HealthLabelRepository: NewHealthLabelRepository(db, log),
		FavoriteRepository:    NewFavoriteRepository(db, log),
		RecipeRepository:      NewRecipeRepository(db, log),
		PictureStorage:        pictures,
		db:                    db,
	}, nil
}

func newPictureStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (PictureStorage, error) {
	if cfg.S3.Bucket != "" {
		storage, err := NewS3PictureStorage(ctx, cfg.S3, log)
		if err != nil {
			return nil, fmt.Errorf("error creating s3 picture storage: %w", err)
		}
		return storage, nil
	}

	return NewFilePictureStorage(cfg.Files.ProfilePicturesDir, log)
}

// SQLDB returns the underlying pool, e.g. for exporting its statistics.
func (s *Storages) SQLDB() *sql.DB {
	if s.db == nil {
		return nil
	}
	return s.db.DB
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
