package apkstore_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/apkstore"
)

func newLocalStore(t *testing.T, files map[string]string) (*apkstore.LocalStorage, string) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "apks")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	store, err := apkstore.NewLocalStorage(dir, "/apks")
	require.NoError(t, err)
	return store, root
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("empty dir", func(t *testing.T) {
		t.Parallel()
		_, err := apkstore.NewLocalStorage("", "/apks/")
		assert.ErrorIs(t, err, apkstore.ErrInvalidConfig)
	})

	t.Run("creates missing dir", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "apks")
		_, err := apkstore.NewLocalStorage(dir, "/apks/")
		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestLocalStorage_Open(t *testing.T) {
	t.Parallel()

	store, root := newLocalStore(t, map[string]string{
		"universal.apk":      "universal-bytes",
		"base-arm64_v8a.apk": "arm64",
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "apks", "dir.apk"), 0o755))

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()

		rc, obj, err := store.Open(context.Background(), "universal.apk")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "universal-bytes", string(data))
		assert.Equal(t, "universal.apk", obj.Name)
		assert.Equal(t, int64(len("universal-bytes")), obj.Size)
		assert.False(t, obj.ModTime.IsZero())

		_, ok := rc.(io.ReadSeeker)
		assert.True(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := store.Open(context.Background(), "base-x86.apk")
		assert.ErrorIs(t, err, apkstore.ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := store.Open(context.Background(), "dir.apk")
		assert.ErrorIs(t, err, apkstore.ErrIsDirectory)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"../secret.txt", "..", "a/../../secret.txt", `..\secret.txt`, "", "/etc/passwd"} {
			_, _, err := store.Open(context.Background(), name)
			assert.ErrorIs(t, err, apkstore.ErrInvalidName, name)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := store.Open(ctx, "universal.apk")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalStorage_Stat(t *testing.T) {
	t.Parallel()

	store, _ := newLocalStore(t, map[string]string{"base-en.apk": "12345"})

	obj, err := store.Stat(context.Background(), "base-en.apk")
	require.NoError(t, err)
	assert.Equal(t, int64(5), obj.Size)

	_, err = store.Stat(context.Background(), "base-fr.apk")
	assert.ErrorIs(t, err, apkstore.ErrFileNotFound)

	_, err = store.Stat(context.Background(), "../base-en.apk")
	assert.ErrorIs(t, err, apkstore.ErrInvalidName)
}

func TestLocalStorage_List(t *testing.T) {
	t.Parallel()

	store, root := newLocalStore(t, map[string]string{
		"universal.apk": "u",
		"base-en.apk":   "en",
		"README":        "readme",
	})
	require.NoError(t, os.Mkdir(filepath.Join(root, "apks", "old"), 0o755))

	objects, err := store.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Name)
	}
	assert.Equal(t, []string{"README", "base-en.apk", "universal.apk"}, names)
}

func TestLocalStorage_URL(t *testing.T) {
	t.Parallel()

	store, _ := newLocalStore(t, nil)
	assert.Equal(t, "/apks/universal.apk", store.URL("universal.apk"))
	assert.Equal(t, "/apks/base-en.apk", store.URL("/base-en.apk"))
}

func TestValidName(t *testing.T) {
	t.Parallel()

	valid := []string{"universal.apk", "base-arm64_v8a.apk", "file"}
	invalid := []string{"", ".", "..", "../x.apk", "a/b.apk", `a\b.apk`, "x..apk", "a\x00.apk"}

	for _, name := range valid {
		assert.True(t, apkstore.ValidName(name), name)
	}
	for _, name := range invalid {
		assert.False(t, apkstore.ValidName(name), name)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("local driver", func(t *testing.T) {
		t.Parallel()
		store, err := apkstore.New(context.Background(), apkstore.Config{
			Driver:  "local",
			Dir:     t.TempDir(),
			BaseURL: "/apks/",
		})
		require.NoError(t, err)
		assert.IsType(t, &apkstore.LocalStorage{}, store)
	})

	t.Run("s3 driver", func(t *testing.T) {
		t.Parallel()
		store, err := apkstore.New(context.Background(), apkstore.Config{
			Driver:  "S3",
			BaseURL: "/apks/",
			S3:      apkstore.S3Config{Bucket: "apks", Region: "eu-west-1"},
		}, apkstore.WithS3Client(&MockS3Client{}))
		require.NoError(t, err)
		assert.IsType(t, &apkstore.S3Storage{}, store)
		assert.Equal(t, "/apks/universal.apk", store.URL("universal.apk"))
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		_, err := apkstore.New(context.Background(), apkstore.Config{Driver: "ftp"})
		assert.ErrorIs(t, err, apkstore.ErrUnknownDriver)
	})
}
