// Command recipeimages assigns image file names to catalog recipes by title.
//
// Usage:
//
//	recipeimages [-images file.json] [-dry-run] [-- server config flags]
//
// Without -images the assignments bundled with the binary are used. Flags
// after "--" are read by the regular configuration loader, so the database
// can be given with -d or STORAGE_DB_DATABASE_URI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/what-to-cook/internal/catalog"
	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
)

func main() {
	log := logger.NewLogger("recipe-images")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(log.WithContext(ctx), os.Args[1:], os.Stdout); err != nil {
		stop()
		log.Fatal().Err(err).Msg("recipe image backfill failed")
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("recipeimages", flag.ContinueOnError)
	imagesPath := fs.String("images", "", "JSON file with [{\"title\":...,\"image\":...}] entries")
	dryRun := fs.Bool("dry-run", false, "print the assignments without touching the database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	images, err := loadImages(*imagesPath)
	if err != nil {
		return err
	}

	if *dryRun {
		for _, img := range images {
			fmt.Fprintf(out, "%s -> %s\n", img.Title, img.Image)
		}
		fmt.Fprintf(out, "%d assignments\n", len(images))
		return nil
	}

	cfg, err := config.GetStorageConfig(fs.Args())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	report, err := catalog.Backfill(ctx, store.NewRecipeRepository(db, log), images)
	fmt.Fprintf(out, "updated %d titles (%d recipes), %d titles not found\n",
		len(report.Updated), report.RowsUpdated, len(report.Missing))
	for _, title := range report.Missing {
		fmt.Fprintf(out, "  not found: %s\n", title)
	}

	return err
}

func loadImages(path string) ([]catalog.ImageAssignment, error) {
	if path == "" {
		return catalog.DefaultImages()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening images file: %w", err)
	}
	defer f.Close()

	return catalog.LoadImages(f)
}
