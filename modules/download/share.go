package download

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/apkdrop/handler"
	"github.com/dmitrymomot/apkdrop/pkg/clientip"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/share"
)

const (
	qrCacheAge     = 24 * time.Hour
	qrCacheEntries = 256
)

type qrKey struct {
	url  string
	size int
}

type shareRequest struct {
	URL   string `query:"url"`
	Title string `query:"title"`
	Text  string `query:"text"`
}

type qrRequest struct {
	URL  string `query:"url"`
	Size int    `query:"size"`
}

func (s *Service) shareLinks(ctx handler.Context, req shareRequest) handler.Response {
	title, text := req.Title, req.Text
	if title == "" {
		title = s.cfg.ShareTitle
	}
	if text == "" {
		text = s.cfg.ShareText
	}

	links, err := share.Build(share.Page{
		URL:   s.shareURL(ctx.Request(), req.URL),
		Title: title,
		Text:  text,
	})
	if err != nil {
		return handler.JSONError(shareError(err))
	}
	return handler.JSON(links)
}

func (s *Service) shareQRCode(ctx handler.Context, req qrRequest) handler.Response {
	target := s.shareURL(ctx.Request(), req.URL)
	if _, err := share.Build(share.Page{URL: target}); err != nil {
		return handler.JSONError(shareError(err))
	}

	key := qrKey{url: target, size: share.ClampQRSize(req.Size)}
	png, err := s.qrCodes.GetOrLoad(key, func() ([]byte, error) {
		return share.QRCode(key.url, key.size)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render QR code", logger.Error(err))
		return handler.JSONError(handler.ErrInternalServerError)
	}
	return handler.Blob("image/png", png, qrCacheAge)
}

// shareURL picks the page to share: the explicit query value, the
// configured SHARE_URL, or this host's /download. The scheme comes from
// the clientip resolver so proxy headers follow one trust policy.
func (s *Service) shareURL(r *http.Request, explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case s.cfg.ShareURL != "":
		return s.cfg.ShareURL
	}
	scheme := clientip.SchemeFromContext(r.Context())
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host + "/download"
}

func shareError(err error) handler.HTTPError {
	if errors.Is(err, share.ErrEmptyURL) || errors.Is(err, share.ErrInvalidURL) {
		return handler.ErrBadRequest
	}
	return handler.ErrInternalServerError
}
