package proxy

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New builds the proxy app with recovery and request logging installed.
func New(h *Handler, cfg Config, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "tube_analytics proxy",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(logger))

	app.Get("/healthz", h.Health)
	app.Get("/api/youtube", h.Forward)

	return app
}

// RequestLogger logs one line per request; 4xx at warn and 5xx at error.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		switch {
		case status >= fiber.StatusInternalServerError:
			level = slog.LevelError
		case status >= fiber.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.Log(c.UserContext(), level, "request",
			"method", c.Method(),
			"path", c.Path(),
			"endpoint", c.Query("endpoint"),
			"status", status,
			"duration", time.Since(start),
			"bytes_sent", len(c.Response().Body()),
		)

		return err
	}
}
