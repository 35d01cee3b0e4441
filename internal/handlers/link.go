package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/serroba/shrtlnk/internal/analytics"
	"github.com/serroba/shrtlnk/internal/messaging"
	"github.com/serroba/shrtlnk/internal/shortener"
	"go.uber.org/zap"
)

// LinkHandler handles short link creation and redirects.
type LinkHandler struct {
	links               *shortener.Service
	baseURL             string
	publishLinkCreated  messaging.Publish[analytics.LinkCreatedEvent]
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent]
	logger              *zap.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(
	links *shortener.Service,
	baseURL string,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishLinkAccessed messaging.Publish[analytics.LinkAccessedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		links:               links,
		baseURL:             baseURL,
		publishLinkCreated:  publishLinkCreated,
		publishLinkAccessed: publishLinkAccessed,
		logger:              logger,
	}
}

func (h *LinkHandler) ShortenURL(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	link, err := h.links.Create(ctx, req.Body.LongURL)
	if err != nil {
		if errors.Is(err, shortener.ErrEmptyURL) {
			return nil, huma.Error400BadRequest("longUrl is required")
		}

		h.logger.Error("failed to create link", zap.Error(err))

		return nil, huma.Error500InternalServerError("internal server error")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		Event:     analytics.EventCreated,
		EventID:   uuid.NewString(),
		ShortCode: string(link.Code),
		LongURL:   link.LongURL,
		Timestamp: link.CreatedAt,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishLinkCreated(event); err != nil {
		h.logger.Error("failed to publish created event",
			zap.String("shortCode", event.ShortCode),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, link.Code)

	resp := &ShortenResponse{}
	resp.Headers.Location = shortURL
	resp.Body.ShortURL = shortURL
	resp.Body.ShortCode = string(link.Code)

	return resp, nil
}

func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	resolution, err := h.links.Resolve(ctx, shortener.Code(req.ShortCode))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short code not found")
		}

		h.logger.Error("failed to resolve link",
			zap.String("shortCode", req.ShortCode),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("internal server error")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkAccessedEvent{
		Event:     analytics.EventAccessed,
		EventID:   uuid.NewString(),
		ShortCode: req.ShortCode,
		LongURL:   resolution.LongURL,
		Cache:     resolution.FromCache,
		Timestamp: time.Now(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}

	if err = h.publishLinkAccessed(event); err != nil {
		h.logger.Error("failed to publish accessed event",
			zap.String("shortCode", event.ShortCode),
			zap.Error(err),
		)
	}

	// 302 rather than 301: a cached permanent redirect would bypass the
	// service, and with it access analytics, forever.
	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = resolution.LongURL

	return resp, nil
}
