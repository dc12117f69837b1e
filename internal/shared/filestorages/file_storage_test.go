package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report-2017.06.30.html",
		"reports/report-2017.06.30.json",
		"nested/deep/path/file.txt",
		"nginx-access-ui.log-20170630.gz",
		"file_with_underscores.txt",
		"subdir/file",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "test data"

			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report-2017.06.30.html"
	data := "initial report"

	_, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, key, strings.NewReader("new report"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	// original data is unchanged and no temp files are left behind
	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, data, string(content))

	entries, err := os.ReadDir(storage.(*fileStorage).dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report-2017.06.30.json"

	_, err := storage.Put(ctx, key, strings.NewReader("[]"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	newData := `[{"url":"/a"}]`
	result, err := storage.Put(ctx, key, strings.NewReader(newData), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, newData, string(content))
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"reports/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nginx-access-ui.log-20170630.gz")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "reports/report-2017.06.30.json"
	data := `[{"url": "/a", "count": 1}]`

	result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestList_ReturnsSortedFileNames(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"b.log", "a.log", "sub/c.log"} {
		_, err := storage.Put(ctx, key, strings.NewReader("x"), PutOptions{})
		require.NoError(t, err)
	}
	// leftover temp files are not listed
	require.NoError(t, os.WriteFile(filepath.Join(storage.(*fileStorage).dir, ".tmp-123"), []byte("x"), 0644))

	names, err := storage.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.log", "b.log"}, names)

	names, err = storage.List(ctx, "sub")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.log"}, names)
}

func TestList_MissingDirectory(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(filepath.Join(t.TempDir(), "reports"))
	require.NoError(t, err)

	names, err := storage.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestList_InvalidDir(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.List(context.Background(), "../outside")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
