package download

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/apkdrop/handler"
	"github.com/dmitrymomot/apkdrop/pkg/apkstore"
	"github.com/dmitrymomot/apkdrop/pkg/clientip"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
)

type fileRequest struct {
	Name string `path:"name"`
}

func (s *Service) serveFile(ctx handler.Context, req fileRequest) handler.Response {
	if !apkstore.ValidName(req.Name) || !strings.HasSuffix(req.Name, ".apk") {
		return handler.JSONError(handler.ErrBadRequest)
	}
	if _, ok := s.known[req.Name]; !ok {
		return handler.JSONError(handler.ErrNotFound)
	}

	body, obj, err := s.store.Open(ctx, req.Name)
	if err != nil {
		if status := storageError(err); status != handler.ErrInternalServerError {
			return handler.JSONError(status)
		}
		s.log.ErrorContext(ctx, "failed to open package", logger.Variant(req.Name), logger.Error(err))
		return handler.JSONError(handler.ErrInternalServerError)
	}

	return transfer{
		svc: s,
		file: handler.File{
			Name:        req.Name,
			ContentType: apkstore.ContentType,
			Size:        obj.Size,
			ModTime:     obj.ModTime,
			ETag:        obj.ETag,
			Body:        body,
		},
	}
}

// transfer streams one package and logs the outcome.
type transfer struct {
	svc  *Service
	file handler.File
}

func (t transfer) Render(w http.ResponseWriter, r *http.Request) error {
	start := time.Now()
	var sent int64
	err := handler.Attachment(t.file, &sent).Render(w, r)

	attrs := []slog.Attr{
		logger.Variant(t.file.Name),
		logger.Bytes(sent),
		logger.Duration(time.Since(start)),
		logger.ClientIP(clientip.FromContext(r.Context())),
	}
	if err != nil {
		// The status line is already out; the client sees a short body
		// and may retry.
		t.svc.log.LogAttrs(r.Context(), slog.LevelWarn, "package transfer interrupted", append(attrs, logger.Error(err))...)
		return nil
	}
	t.svc.log.LogAttrs(r.Context(), slog.LevelInfo, "package served", attrs...)
	return nil
}

func storageError(err error) handler.HTTPError {
	switch {
	case errors.Is(err, apkstore.ErrInvalidName):
		return handler.ErrBadRequest
	case errors.Is(err, apkstore.ErrFileNotFound), errors.Is(err, apkstore.ErrIsDirectory):
		return handler.ErrNotFound
	case errors.Is(err, apkstore.ErrServiceUnavailable):
		return handler.ErrServiceUnavailable
	case errors.Is(err, apkstore.ErrRequestTimeout), errors.Is(err, apkstore.ErrOperationTimeout):
		return handler.ErrGatewayTimeout
	default:
		return handler.ErrInternalServerError
	}
}
