package apkstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/apkstore"
	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

func TestAudit(t *testing.T) {
	t.Parallel()

	t.Run("reports missing, mismatched and unreferenced files", func(t *testing.T) {
		t.Parallel()

		catalog := variant.New(variant.WithSizes(map[string]int64{
			"universal.apk": 9,
			"base-en.apk":   2,
		}))

		files := map[string]string{
			"universal.apk": "123456789",
			"base-en.apk":   "english",
			"notes.txt":     "n",
		}
		for _, id := range catalog.Identifiers() {
			if _, ok := files[id]; !ok && id != "base-ko.apk" {
				files[id] = "x"
			}
		}
		store, _ := newLocalStore(t, files)

		report, err := apkstore.Audit(context.Background(), store, catalog)
		require.NoError(t, err)

		assert.False(t, report.OK())
		assert.True(t, report.UniversalPresent)
		assert.Equal(t, []string{"base-ko.apk"}, report.Missing)
		assert.Equal(t, []string{"notes.txt"}, report.Unreferenced)

		// base-arm64_v8a.apk etc. carry catalog sizes and were written as "x"
		names := make([]string, 0, len(report.Mismatched))
		for _, m := range report.Mismatched {
			names = append(names, m.Name)
		}
		assert.Contains(t, names, "base-en.apk")
		assert.Contains(t, names, "base-arm64_v8a.apk")
		assert.NotContains(t, names, "universal.apk")
		assert.NotContains(t, names, "base-mdpi.apk")

		for _, m := range report.Mismatched {
			if m.Name == "base-en.apk" {
				assert.Equal(t, int64(2), m.Catalog)
				assert.Equal(t, int64(len("english")), m.Stored)
			}
		}
	})

	t.Run("consistent store", func(t *testing.T) {
		t.Parallel()

		catalog := variant.Default()
		store := &staticStore{objects: objectsFor(catalog)}

		report, err := apkstore.Audit(context.Background(), store, catalog)
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.True(t, report.UniversalPresent)
		assert.Empty(t, report.Missing)
		assert.Empty(t, report.Mismatched)
		assert.Empty(t, report.Unreferenced)
	})

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		store, _ := newLocalStore(t, nil)
		report, err := apkstore.Audit(context.Background(), store, variant.Default())
		require.NoError(t, err)
		assert.False(t, report.UniversalPresent)
		assert.Len(t, report.Missing, len(variant.Default().Identifiers()))
	})

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("ListObjectsV2", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		store := newS3Store(t, client, "")

		_, err := apkstore.Audit(context.Background(), store, variant.Default())
		assert.Error(t, err)
	})
}

// staticStore lists a fixed set of objects.
type staticStore struct {
	apkstore.Storage
	objects []apkstore.Object
}

func (s *staticStore) List(context.Context) ([]apkstore.Object, error) {
	return s.objects, nil
}

func objectsFor(c *variant.Catalog) []apkstore.Object {
	ids := c.Identifiers()
	objects := make([]apkstore.Object, 0, len(ids))
	for _, id := range ids {
		objects = append(objects, apkstore.Object{Name: id, Size: c.SizeOf(id)})
	}
	return objects
}
