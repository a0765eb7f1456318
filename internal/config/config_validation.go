// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server relies on at startup. All violations are reported
// at once, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.validateApp(),
		cfg.validateStorage(),
		cfg.validateServer(),
		cfg.validateLog(),
	)
}

func (cfg *StructuredConfig) validateApp() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: password hash cost must be in range %d-%d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}
	if _, err := url.ParseRequestURI(cfg.App.RecipeImagesBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("%w: recipe images base url: %w", ErrInvalidAppConfigs, err))
	}

	return errors.Join(errs...)
}

func (cfg *StructuredConfig) validateStorage() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("%w: connection limits must not be negative", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.S3.Bucket == "" && cfg.Storage.Files.ProfilePicturesDir == "" {
		errs = append(errs, fmt.Errorf("%w: either a pictures directory or an S3 bucket is required", ErrInvalidStorageConfigs))
	}
	if (cfg.Storage.S3.AccessKeyID == "") != (cfg.Storage.S3.SecretAccessKey == "") {
		errs = append(errs, fmt.Errorf("%w: S3 access key id and secret must be set together", ErrInvalidStorageConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *StructuredConfig) validateServer() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}
	if cfg.Server.MaxUploadSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *StructuredConfig) validateLog() error {
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
