package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/what-to-cook/internal/catalog"
)

func TestRun_DryRunWithBundledImages(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), []string{"-dry-run"}, &out)

	require.NoError(t, err)
	images, err := catalog.DefaultImages()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Baked Chicken -> baked_chicken.png\n")
	assert.Contains(t, out.String(), "assignments\n")
	assert.Equal(t, len(images)+1, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestRun_DryRunWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Soup","image":"soup.png"}]`), 0o600))
	var out bytes.Buffer

	err := run(context.Background(), []string{"-images", path, "-dry-run"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Soup -> soup.png\n1 assignments\n", out.String())
}

func TestRun_InvalidImagesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"","image":"soup.png"}]`), 0o600))

	err := run(context.Background(), []string{"-images", path, "-dry-run"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, catalog.ErrEmptyTitle)
}

func TestRun_MissingImagesFile(t *testing.T) {
	err := run(context.Background(), []string{"-images", filepath.Join(t.TempDir(), "nope.json")}, &bytes.Buffer{})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run(context.Background(), []string{"-bogus"}, &bytes.Buffer{})

	assert.Error(t, err)
}
