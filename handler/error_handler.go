package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apkdrop/pkg/environment"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/requestid"
)

// NewErrorHandler returns an ErrorHandler that logs err and renders it
// as a JSON error envelope. Client errors log at warn, server errors at
// error. In production the message of a non-HTTP error is replaced with
// the generic status text.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusOf(err)
		id := requestid.FromContext(r.Context())

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("http"),
		)

		resp := JSONError(err)
		if jr, ok := resp.(*jsonResponse); ok {
			jr.body.Error.RequestID = id
			if status == http.StatusInternalServerError && environment.IsProduction(r.Context()) {
				jr.body.Error.Message = http.StatusText(status)
			}
		}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error", logger.Error(renderErr))
		}
	}
}
