// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog maintains the recipe catalog: it ships the default
// title-to-image assignments and applies them to the recipe table.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
)

//go:embed recipe_images.json
var defaultImages []byte

var (
	ErrEmptyTitle     = errors.New("recipe title is empty")
	ErrEmptyImage     = errors.New("image name is empty")
	ErrDuplicateTitle = errors.New("recipe title is listed twice")
)

// ImageAssignment maps a recipe title to the image file shown for it.
type ImageAssignment struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// Report summarizes a backfill run.
type Report struct {
	// Updated lists titles that matched at least one recipe.
	Updated []string
	// Missing lists titles no recipe carries.
	Missing []string
	// RowsUpdated counts updated recipes; one title may match several.
	RowsUpdated int64
}

// DefaultImages returns the assignments bundled with the binary.
func DefaultImages() ([]ImageAssignment, error) {
	return LoadImages(bytes.NewReader(defaultImages))
}

// LoadImages decodes a JSON array of assignments and checks that every
// entry has a title and an image and that no title repeats.
func LoadImages(r io.Reader) ([]ImageAssignment, error) {
	var images []ImageAssignment
	if err := json.NewDecoder(r).Decode(&images); err != nil {
		return nil, fmt.Errorf("error decoding recipe images: %w", err)
	}

	seen := make(map[string]struct{}, len(images))
	for i, img := range images {
		switch {
		case strings.TrimSpace(img.Title) == "":
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyTitle)
		case strings.TrimSpace(img.Image) == "":
			return nil, fmt.Errorf("entry %d (%q): %w", i, img.Title, ErrEmptyImage)
		}
		if _, ok := seen[img.Title]; ok {
			return nil, fmt.Errorf("entry %d (%q): %w", i, img.Title, ErrDuplicateTitle)
		}
		seen[img.Title] = struct{}{}
	}

	return images, nil
}

// Backfill sets the image of every recipe whose title appears in images.
// Titles without a recipe are reported, not treated as errors. The first
// repository error stops the run and is returned with the partial report.
func Backfill(ctx context.Context, recipes store.RecipeRepository, images []ImageAssignment) (Report, error) {
	log := logger.FromContext(ctx)
	var report Report

	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		affected, err := recipes.SetImageByTitle(ctx, img.Title, img.Image)
		if err != nil {
			return report, fmt.Errorf("error setting image for %q: %w", img.Title, err)
		}

		if affected == 0 {
			log.Warn().Str("title", img.Title).Msg("recipe not found")
			report.Missing = append(report.Missing, img.Title)
			continue
		}

		log.Info().Str("title", img.Title).Str("image", img.Image).Int64("rows", affected).Msg("recipe image updated")
		report.Updated = append(report.Updated, img.Title)
		report.RowsUpdated += affected
	}

	return report, nil
}
