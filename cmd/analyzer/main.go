package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tube_analytics/internal/config"
	"tube_analytics/internal/service"
	"tube_analytics/internal/source/youtube"
)

const usage = `usage: analyzer [-config file] <command> [flags] [args]

commands:
  channel <url|id|@handle>         channel analytics
  video <url|id>                   video analytics
  trending [-region ID] [-sort views|likes|comments]
  search [-type video|channel] <query>
  keyword <keyword>                keyword explorer
  seo -title T [-description D] [-tags a,b] [-keyword K]
  abtest -a TITLE -b TITLE         title A/B power test
  tags [-category NAME] [-select a,b] <keyword>
  compare <channel>...             compare up to 5 channels
  schedule [-niche gaming|tech|vlog|education|entertainment]
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	logger := setupLogger("warn")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client := youtube.New(youtube.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.Key,
		Timeout: cfg.API.Timeout,
	}, logger)

	a := &analyzer{
		dashboard: service.NewDashboard(client, logger, cfg.Dashboard),
		cfg:       cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, err := a.run(ctx, flag.Arg(0), flag.Args()[1:])
	if err != nil {
		var alert *service.Alert
		if errors.As(err, &alert) {
			fmt.Fprintln(os.Stderr, alert.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if err := writeJSON(os.Stdout, out); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// setupLogger writes to stderr so stdout carries only the JSON result.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
