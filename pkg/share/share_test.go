package share_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/share"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		links, err := share.Build(share.Page{URL: "https://apps.example.com/download?ref=qr"})
		require.NoError(t, err)

		assert.Equal(t, share.DefaultTitle, links.Title)
		assert.Equal(t, share.DefaultText, links.Text)
		assert.Equal(t, "https://apps.example.com/download?ref=qr", links.Copy)
		assert.Equal(t,
			"https://twitter.com/intent/tweet?text=Get%20the%20perfect%20app%20for%20your%20device&url=https%3A%2F%2Fapps.example.com%2Fdownload%3Fref%3Dqr",
			links.Twitter)
		assert.Equal(t,
			"https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fapps.example.com%2Fdownload%3Fref%3Dqr",
			links.Facebook)
		assert.Equal(t,
			"https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Fapps.example.com%2Fdownload%3Fref%3Dqr",
			links.LinkedIn)
	})

	t.Run("custom text", func(t *testing.T) {
		t.Parallel()

		links, err := share.Build(share.Page{URL: "http://example.com", Title: "Demo", Text: "C++ & more"})
		require.NoError(t, err)

		assert.Equal(t, "Demo", links.Title)
		assert.True(t, strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?text=C%2B%2B%20%26%20more&url="))
	})

	t.Run("invalid urls", func(t *testing.T) {
		t.Parallel()

		_, err := share.Build(share.Page{URL: "  "})
		assert.ErrorIs(t, err, share.ErrEmptyURL)

		for _, raw := range []string{"/download", "ftp://example.com/x", "javascript:alert(1)", "http://"} {
			_, err := share.Build(share.Page{URL: raw})
			assert.ErrorIs(t, err, share.ErrInvalidURL, raw)
		}
	})
}

func TestLinksURL(t *testing.T) {
	t.Parallel()

	links, err := share.Build(share.Page{URL: "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, links.Copy, links.URL("copy"))
	assert.Equal(t, links.Twitter, links.URL("Twitter"))
	assert.Equal(t, links.Facebook, links.URL(share.PlatformFacebook))
	assert.Equal(t, links.LinkedIn, links.URL(share.PlatformLinkedIn))
	assert.Empty(t, links.URL("myspace"))
}

func TestQRCode(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode(" \t", 256)
		assert.ErrorIs(t, err, share.ErrEmptyContent)
		assert.Nil(t, data)
	})

	t.Run("valid png", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode("https://example.com/download", 128)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})

	t.Run("data uri", func(t *testing.T) {
		t.Parallel()
		uri, err := share.QRCodeDataURI("https://example.com", 0)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
	})
}

func TestClampQRSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, share.DefaultQRSize, share.ClampQRSize(0))
	assert.Equal(t, share.DefaultQRSize, share.ClampQRSize(-5))
	assert.Equal(t, share.MinQRSize, share.ClampQRSize(10))
	assert.Equal(t, 300, share.ClampQRSize(300))
	assert.Equal(t, share.MaxQRSize, share.ClampQRSize(5000))
}
