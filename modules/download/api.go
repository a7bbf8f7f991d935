package download

import (
	"github.com/dmitrymomot/apkdrop/handler"
	"github.com/dmitrymomot/apkdrop/pkg/device"
	"github.com/dmitrymomot/apkdrop/pkg/logger"
	"github.com/dmitrymomot/apkdrop/pkg/variant"
)

func (s *Service) deviceInfo(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(device.ProfileRequest(ctx.Request()))
}

func (s *Service) selectVariant(ctx handler.Context, _ struct{}) handler.Response {
	p := device.ProfileRequest(ctx.Request())
	choice := s.catalog.Choose(p)
	s.log.DebugContext(ctx, "variant selected", logger.Variant(choice.ID), logger.Device(p))
	return handler.JSON(choice, handler.WithJSONMeta(map[string]any{"profile": p}))
}

func (s *Service) listVariants(handler.Context, struct{}) handler.Response {
	ids := s.catalog.Identifiers()
	out := make([]variant.Choice, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.catalog.Describe(id))
	}
	return handler.JSON(out, handler.WithJSONMeta(map[string]any{"count": len(out)}))
}

// redirect sends the caller to its variant. Selection is deterministic,
// so following the link again after a failed transfer yields the same file.
func (s *Service) redirect(ctx handler.Context, _ struct{}) handler.Response {
	p := device.ProfileRequest(ctx.Request())
	id := s.catalog.Select(p)
	s.log.InfoContext(ctx, "download redirect", logger.Variant(id), logger.Device(p))
	return handler.Redirect(s.store.URL(id))
}
