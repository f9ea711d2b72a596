// Package proxy serves the local pass-through route that forwards Data API
// calls with the server-side key attached.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"tube_analytics/internal/source/youtube"
)

// Upstream performs one raw Data API call.
type Upstream interface {
	Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
}

type Handler struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewHandler(upstream Upstream, logger *slog.Logger) *Handler {
	return &Handler{
		upstream: upstream,
		logger:   logger.With("component", "proxy"),
	}
}

// Forward handles GET /api/youtube?endpoint=<name>&<params>.
func (h *Handler) Forward(c *fiber.Ctx) error {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Endpoint required"})
	}
	if !youtube.ValidEndpoint(endpoint) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid endpoint"})
	}

	params := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		if k := string(key); k != "endpoint" {
			params.Add(k, string(value))
		}
	})

	body, err := h.upstream.Get(c.UserContext(), endpoint, params)
	if err != nil {
		status, detail := failure(err)
		h.logger.Error("upstream call failed", "endpoint", endpoint, "status", status, "error", err)
		return c.Status(status).JSON(fiber.Map{"error": detail, "status": status})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// failure maps err to the status and error value of the error envelope. A JSON
// upstream error body is passed through as is.
func failure(err error) (int, any) {
	var rf *youtube.RequestFailure
	if !errors.As(err, &rf) {
		return fiber.StatusInternalServerError, err.Error()
	}
	if rf.StatusCode == 0 {
		return fiber.StatusInternalServerError, rf.Message()
	}

	var upstream struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(rf.Body, &upstream) == nil && len(upstream.Error) > 0 {
		return rf.StatusCode, json.RawMessage(rf.Body)
	}
	return rf.StatusCode, rf.Message()
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
