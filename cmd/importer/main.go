package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"orrery-api/internal/catalog"
	"orrery-api/internal/config"
	"orrery-api/internal/logger"
	"orrery-api/internal/models"
	"orrery-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	File      string        `short:"f" long:"file"       description:"Path to the catalog file to import" required:"true"`
	DBSource  string        `short:"d" long:"db"         env:"DB_SOURCE" description:"PostgreSQL connection string (defaults to the config file)"`
	ConfigDir string        `short:"c" long:"config-dir" description:"Directory holding app.env" default:"configs"`
	Timeout   time.Duration `short:"t" long:"timeout"    description:"Overall import timeout" default:"1m"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	log.Info().Str("file", opts.File).Msg("Starting import")

	records, err := parseCatalog(opts.File)
	if err != nil {
		log.Fatal().Err(err).Msg("Error parsing catalog")
	}

	log.Info().Int("records", len(records)).Msg("Parsed catalog")

	dsn, err := resolveDSN(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	// Connect to DB
	conn, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	if err := importCatalog(ctx, repo, records); err != nil {
		log.Error().Err(err).Msg("Import failed")
		cancel()
		conn.Close()
		os.Exit(1)
	}

	log.Info().Int("records", len(records)).Msg("Successfully imported catalog")
}

// parseCatalog reads the file and validates every line before anything is written.
func parseCatalog(path string) ([]models.CatalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	text := string(data)

	if _, err := catalog.Parse(text); err != nil {
		return nil, err
	}

	records, err := catalog.Records(text)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("catalog file has no records")
	}
	return records, nil
}

func resolveDSN(opts Options) (string, error) {
	if opts.DBSource != "" {
		return opts.DBSource, nil
	}

	cfg, err := config.LoadConfig(opts.ConfigDir)
	if err != nil && cfg.DBSource == "" {
		return "", err
	}
	if cfg.DBSource == "" {
		return "", errors.New("DB_SOURCE is not set")
	}
	return cfg.DBSource, nil
}

type catalogStore interface {
	EnsureSchema(ctx context.Context) error
	ReplaceCatalog(ctx context.Context, records []models.CatalogRecord) error
	CountBodies(ctx context.Context) (int, error)
}

func importCatalog(ctx context.Context, store catalogStore, records []models.CatalogRecord) error {
	// Ensure table exists
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	if err := store.ReplaceCatalog(ctx, records); err != nil {
		return err
	}

	// Verify data
	count, err := store.CountBodies(ctx)
	if err != nil {
		return err
	}
	if count != len(records) {
		return fmt.Errorf("record count mismatch: expected %d, got %d", len(records), count)
	}

	log.Debug().Str("first", records[0].Name).Str("value", records[0].Value).Msg("Sample record")
	return nil
}
