// Command bgt-export выгружает снимок всех данных трекера в JSON:
// в S3-совместимый бакет (R2, MinIO, AWS) или, с флагом -out, в локальный каталог.
// С флагом -keep N после выгрузки удаляются все снимки, кроме N последних.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/boardgame-tracker/config"
	"github.com/Dosada05/boardgame-tracker/db"
	"github.com/Dosada05/boardgame-tracker/repositories"
	"github.com/Dosada05/boardgame-tracker/services"
	"github.com/Dosada05/boardgame-tracker/storage"
)

func main() {
	outDir := flag.String("out", "", "write the snapshot into this directory instead of object storage")
	pathStyle := flag.Bool("path-style", false, "use path-style S3 addressing (MinIO and similar)")
	keep := flag.Int("keep", 0, "after uploading, delete all but the newest N snapshots (0 keeps everything)")
	timeout := flag.Duration("timeout", time.Minute, "overall export timeout")
	flag.Parse()

	if *keep < 0 {
		slog.Error("invalid -keep value", slog.Int("keep", *keep))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, *outDir, *pathStyle, *keep); err != nil {
		logger.Error("export failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, outDir string, pathStyle bool, keep int) error {
	uploader, err := newUploader(ctx, cfg.Storage, outDir, pathStyle)
	if err != nil {
		return err
	}

	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn); err != nil {
		return err
	}

	exportService := services.NewExportService(repositories.NewSQLSnapshotRepository(dbConn), uploader, logger)

	result, err := exportService.UploadSnapshot(ctx)
	if err != nil {
		return err
	}

	logger.Info("export complete", slog.String("key", result.Key), slog.String("location", result.Location))

	if keep > 0 {
		if _, err := exportService.PruneSnapshots(ctx, keep); err != nil {
			return err
		}
	}
	return nil
}

func newUploader(ctx context.Context, sc config.StorageConfig, outDir string, pathStyle bool) (storage.FileUploader, error) {
	if outDir != "" {
		return storage.NewLocalUploader(outDir)
	}
	if !sc.Configured() {
		return nil, errors.New("object storage is not configured: set S3_BUCKET, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY or pass -out")
	}

	return storage.NewS3Uploader(ctx, storage.S3UploaderConfig{
		AccountID:       sc.R2AccountID,
		Endpoint:        sc.Endpoint,
		Region:          sc.Region,
		AccessKeyID:     sc.AccessKeyID,
		SecretAccessKey: sc.SecretAccessKey,
		BucketName:      sc.BucketName,
		PublicBaseURL:   sc.PublicBaseURL,
		UsePathStyle:    pathStyle,
	})
}
