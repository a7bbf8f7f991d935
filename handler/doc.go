// Package handler turns typed handler functions into http.HandlerFunc
// values. Requests are bound into a struct by binder functions, handed to
// a HandlerFunc together with a Context, and the returned Response is
// rendered. Failures from any step reach a single ErrorHandler.
//
//	type variantRequest struct {
//		Arch string `query:"arch"`
//	}
//
//	r.Get("/api/variant", handler.Wrap(
//		handler.HandlerFunc[handler.Context, variantRequest](selectVariant),
//		handler.WithBinders[handler.Context, variantRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, variantRequest](handler.NewErrorHandler(log)),
//	))
//
// Responses cover JSON envelopes, redirects, file attachments and
// in-memory blobs.
package handler
