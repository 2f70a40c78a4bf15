package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/student360/internal/bootstrap"
	"github.com/yigit/student360/internal/config"
	"github.com/yigit/student360/internal/export"
	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/filestorage"
	"github.com/yigit/student360/internal/server"
)

// loadConfig reads the config and applies the command flags on top of it
func loadConfig(c *cli.Context) (*config.Config, zerolog.Logger, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return nil, lgr, err
	}

	if c.IsSet("num-students") {
		cfg.Generator.Students = c.Int("num-students")
	}
	if c.IsSet("seed") {
		cfg.Generator.Seed = c.Int64("seed")
	}
	if c.IsSet("out-dir") {
		cfg.Generator.OutDir = c.String("out-dir")
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.String("port")
	}
	return cfg, lgr, nil
}

func generateAction(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	ds, err := bootstrap.GenerateDataset(cfg, lgr)
	if err != nil {
		return err
	}

	store, err := filestorage.NewLocalStorage(cfg.Generator.OutDir, lgr)
	if err != nil {
		return err
	}
	manifest, err := export.NewWriter(store, lgr).Write(c.Context, ds)
	if err != nil {
		return err
	}

	lgr.Info().
		Str("outDir", store.BasePath()).
		Int("students", manifest.Students).
		Int64("seed", manifest.Seed).
		Str("runId", manifest.RunID).
		Msg("Synthetic data generated")
	return nil
}

func uploadAction(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	bucket := c.String("bucket")
	if bucket == "" {
		bucket = cfg.Storage.Bucket
	}
	if bucket == "" {
		return apperrors.NewInvalidArgumentError("a bucket is required (--bucket or S3_BUCKET)")
	}
	dataDir := c.String("data-dir")
	if dataDir == "" {
		dataDir = cfg.Generator.OutDir
	}
	region := cfg.ResolveRegion(c.String("region"))

	store, err := bootstrap.SetupObjectStore(cfg, region)
	if err != nil {
		return err
	}
	res, err := filestorage.NewUploader(store, export.Dirs, lgr).Upload(c.Context, dataDir, bucket, region)
	if err != nil {
		return err
	}

	lgr.Info().Str("bucket", res.Bucket).Str("region", res.Region).Int("objects", len(res.Keys)).Msg("Upload finished")
	return nil
}

func loadAction(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	ds, err := bootstrap.GenerateDataset(cfg, lgr)
	if err != nil {
		return err
	}

	database, err := bootstrap.SetupDatabase(c.Context, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(ds, database, lgr)
	counts, err := deps.Repos.WarehouseRepository.Load(c.Context, export.Tables(ds))
	if err != nil {
		return fmt.Errorf("warehouse load failed: %w", err)
	}

	var rows int64
	for _, n := range counts {
		rows += n
	}
	lgr.Info().Int("tables", len(counts)).Int64("rows", rows).Msg("Warehouse loaded")
	return nil
}

func serveAction(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, lgr)
	if err != nil {
		return err
	}
	return srv.Run(c.Context)
}
