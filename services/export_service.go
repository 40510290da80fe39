package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
	"github.com/Dosada05/boardgame-tracker/storage"
	"golang.org/x/sync/errgroup"
)

const (
	snapshotContentType = "application/json"
	snapshotKeyPrefix   = "snapshots/bgt-"
	snapshotKeySuffix   = ".json"

	pruneConcurrency = 4
)

var ErrExportFailed = errors.New("failed to export snapshot")

type ExportService interface {
	BuildSnapshot(ctx context.Context) (*models.Snapshot, error)
	// UploadSnapshot выгружает снимок в объектное хранилище и возвращает результат загрузки.
	UploadSnapshot(ctx context.Context) (*storage.UploadResult, error)
	// PruneSnapshots оставляет keep самых свежих снимков и удаляет остальные.
	// Возвращает удалённые ключи.
	PruneSnapshots(ctx context.Context, keep int) ([]string, error)
}

type exportService struct {
	snapshotRepo repositories.SnapshotRepository
	uploader     storage.FileUploader
	logger       *slog.Logger
	now          func() time.Time
}

func NewExportService(
	snapshotRepo repositories.SnapshotRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &exportService{
		snapshotRepo: snapshotRepo,
		uploader:     uploader,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *exportService) BuildSnapshot(ctx context.Context) (*models.Snapshot, error) {
	snapshot, err := s.snapshotRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	snapshot.GeneratedAt = s.now().UTC()
	return snapshot, nil
}

func (s *exportService) UploadSnapshot(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrExportFailed)
	}

	snapshot, err := s.BuildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	key := SnapshotKey(snapshot.GeneratedAt)
	result, err := s.uploader.Upload(ctx, key, snapshotContentType, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	s.logger.InfoContext(ctx, "snapshot uploaded",
		slog.String("key", result.Key),
		slog.Int("games", len(snapshot.Games)),
		slog.Int("players", len(snapshot.Players)),
		slog.Int("sessions", len(snapshot.Sessions)),
		slog.Int("session_players", len(snapshot.SessionPlayers)),
	)
	return result, nil
}

func (s *exportService) PruneSnapshots(ctx context.Context, keep int) ([]string, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrExportFailed)
	}
	if keep < 1 {
		return nil, fmt.Errorf("%w: at least one snapshot must be kept, got %d", ErrValidationFailed, keep)
	}

	keys, err := s.uploader.List(ctx, snapshotKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	// Ключи содержат UTC-время в формате 20060102T150405Z, поэтому сортируются хронологически
	snapshots := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasSuffix(key, snapshotKeySuffix) {
			snapshots = append(snapshots, key)
		}
	}
	if len(snapshots) <= keep {
		return []string{}, nil
	}
	stale := snapshots[:len(snapshots)-keep]

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(pruneConcurrency)
	for _, key := range stale {
		key := key
		g.Go(func() error {
			return s.uploader.Delete(gCtx, key)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	s.logger.InfoContext(ctx, "old snapshots pruned",
		slog.Int("deleted", len(stale)),
		slog.Int("kept", keep),
	)
	return stale, nil
}

// SnapshotKey строит ключ объекта вида snapshots/bgt-20240301T120000Z.json.
func SnapshotKey(at time.Time) string {
	return snapshotKeyPrefix + at.UTC().Format("20060102T150405Z") + snapshotKeySuffix
}
