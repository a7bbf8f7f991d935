package variant_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid override", func(t *testing.T) {
		t.Parallel()

		src := `
languages:
  uk: Ukrainian
sizes:
  universal.apk: 60000000
  base-uk.apk: 101234
`
		c, err := variant.Load(strings.NewReader(src))
		require.NoError(t, err)

		assert.Equal(t, "Ukrainian Version", c.ReadableName("base-uk.apk"))
		assert.Equal(t, int64(60000000), c.SizeOf("universal.apk"))
		assert.Equal(t, int64(4080322), c.SizeOf("base-arm64_v8a.apk"))
		assert.Contains(t, c.Identifiers(), "base-uk.apk")
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		t.Parallel()

		c, err := variant.Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, variant.Default().Sizes(), c.Sizes())
		assert.Equal(t, variant.Default().Languages(), c.Languages())
	})

	t.Run("invalid documents", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"unknown field":     "architectures:\n  mips: MIPS\n",
			"negative size":     "sizes:\n  universal.apk: -1\n",
			"zero size":         "sizes:\n  base-en.apk: 0\n",
			"missing extension": "sizes:\n  universal: 100\n",
			"empty label":       "languages:\n  uk: \"\"\n",
			"malformed yaml":    "languages: [uk",
		}

		for name, src := range cases {
			_, err := variant.Load(strings.NewReader(src))
			assert.ErrorIs(t, err, variant.ErrInvalidCatalog, name)
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := variant.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, variant.ErrCatalogNotFound)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("languages:\n  pl: Polish\n"), 0o600))

		c, err := variant.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Polish Version", c.ReadableName("base-pl.apk"))
	})
}
