package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
	"github.com/Dosada05/boardgame-tracker/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalExport(t *testing.T, s *testServices) (*exportService, *storage.LocalUploader, string) {
	t.Helper()
	dir := t.TempDir()
	uploader, err := storage.NewLocalUploader(dir)
	require.NoError(t, err)

	svc := NewExportService(repositories.NewSQLSnapshotRepository(s.db), uploader, nil).(*exportService)
	return svc, uploader, dir
}

func TestSnapshotKey(t *testing.T) {
	at := time.Date(2024, time.March, 1, 12, 30, 5, 0, time.FixedZone("X", 3*3600))
	assert.Equal(t, "snapshots/bgt-20240301T093005Z.json", SnapshotKey(at))
}

func TestExportService_BuildSnapshot(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")
	s.mustSession(t, "s1", "g1")
	s.mustPlayer(t, "p1")
	_, err := s.sessionPlayers.MergeAllSessionPlayers(ctx, "s1", []SessionPlayersInput{
		{ID: ptr("sp1"), PlayerID: ptr("p1"), Score: ptr(7), Team: ptr(0), Winner: ptr(true)},
	})
	require.NoError(t, err)

	snapshot, err := s.export.BuildSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Games, 1)
	assert.Len(t, snapshot.Players, 1)
	require.Len(t, snapshot.Sessions, 1)
	assert.Len(t, snapshot.Sessions[0].Players, 1)
	require.Len(t, snapshot.SessionPlayers, 1)
	assert.Equal(t, "sp1", snapshot.SessionPlayers[0].ID)
	assert.False(t, snapshot.GeneratedAt.IsZero())
}

func TestExportService_UploadSnapshot(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	s.mustGame(t, "g1")

	svc, _, dir := newLocalExport(t, s)
	svc.now = func() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) }

	res, err := svc.UploadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snapshots/bgt-20240301T000000Z.json", res.Key)

	data, err := os.ReadFile(filepath.Join(dir, "snapshots", "bgt-20240301T000000Z.json"))
	require.NoError(t, err)

	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot.Games, 1)
	assert.Equal(t, "g1", snapshot.Games[0].ID)
}

func TestExportService_PruneSnapshots(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	svc, uploader, _ := newLocalExport(t, s)

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 5; day++ {
		at := base.AddDate(0, 0, day)
		svc.now = func() time.Time { return at }
		_, err := svc.UploadSnapshot(ctx)
		require.NoError(t, err)
	}
	// Чужой объект под тем же префиксом каталога не трогаем
	_, err := uploader.Upload(ctx, "snapshots/notes.txt", "text/plain", strings.NewReader("keep me"))
	require.NoError(t, err)

	deleted, err := svc.PruneSnapshots(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"snapshots/bgt-20240301T000000Z.json",
		"snapshots/bgt-20240302T000000Z.json",
		"snapshots/bgt-20240303T000000Z.json",
	}, deleted)

	left, err := uploader.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"snapshots/bgt-20240304T000000Z.json",
		"snapshots/bgt-20240305T000000Z.json",
		"snapshots/notes.txt",
	}, left)

	deleted, err = svc.PruneSnapshots(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, deleted)

	_, err = svc.PruneSnapshots(ctx, 0)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestExportService_WithoutStorage(t *testing.T) {
	s := newTestServices(t)

	_, err := s.export.UploadSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrExportFailed)

	_, err = s.export.PruneSnapshots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExportFailed)
}
