package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploader_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir)
	require.NoError(t, err)
	ctx := context.Background()

	res, err := u.Upload(ctx, "snapshots/bgt.json", "application/json", strings.NewReader(`{"games":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "snapshots/bgt.json", res.Key)

	data, err := os.ReadFile(filepath.Join(dir, "snapshots", "bgt.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"games":[]}`, string(data))

	require.NoError(t, u.Delete(ctx, "snapshots/bgt.json"))
	_, err = os.Stat(filepath.Join(dir, "snapshots", "bgt.json"))
	assert.True(t, os.IsNotExist(err))

	// Повторное удаление не ошибка
	require.NoError(t, u.Delete(ctx, "snapshots/bgt.json"))
}

func TestLocalUploader_List(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"snapshots/bgt-2.json", "other/x.json", "snapshots/bgt-1.json"} {
		_, err := u.Upload(ctx, key, "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
	}

	keys, err := u.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/bgt-1.json", "snapshots/bgt-2.json"}, keys)

	keys, err = u.List(ctx, "missing/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLocalUploader_RejectsEscapingKeys(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "../outside.json", "application/json", strings.NewReader("{}"))
	assert.Error(t, err)
}

func TestObjectLocation(t *testing.T) {
	assert.Equal(t, "s3://bucket/snapshots/a.json", objectLocation("", "bucket", "snapshots/a.json"))
	assert.Equal(t, "https://cdn.example.com/snapshots/a.json", objectLocation("https://cdn.example.com", "bucket", "snapshots/a.json"))
	assert.Equal(t, "https://cdn.example.com/base/snapshots/a.json", objectLocation("https://cdn.example.com/base/", "bucket", "/snapshots/a.json"))
}

func TestNewS3Uploader_RequiresCredentials(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), S3UploaderConfig{BucketName: "b"})
	assert.Error(t, err)
}
