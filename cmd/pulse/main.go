package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zappabad/pulse/internal/config"
	"github.com/zappabad/pulse/internal/observability"
	pulseservice "github.com/zappabad/pulse/internal/pulse/service"
	"github.com/zappabad/pulse/internal/session"
	"github.com/zappabad/pulse/tui"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// The renderer owns stdout in TUI mode.
	var logOut io.Writer = os.Stdout
	if cfg.EnableTUI {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	logger := setupLogger(cfg.LogLevel, logOut)
	slog.SetDefault(logger)

	slog.Info("config_loaded",
		"enable_tui", cfg.EnableTUI,
		"seed", cfg.Seed,
		"feed_interval_min", cfg.FeedMinInterval,
		"feed_interval_max", cfg.FeedMaxInterval,
		"feed_batch_min", cfg.FeedMinBatch,
		"feed_batch_max", cfg.FeedMaxBatch,
		"max_column_len", cfg.MaxColumnLen,
		"metrics_addr", cfg.MetricsAddr,
	)

	sess, err := session.New(cfg, pulseservice.LogBuyer{Logger: logger}, logger)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		os.Exit(1)
	}
	defer sess.Close()

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, sess)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if cfg.EnableTUI {
		runTUI(sess, cfg.UIRefreshRate, sigChan)
	} else {
		runHeadless(sess, sigChan)
	}

	slog.Info("shutdown_complete", "dropped_events", sess.Pulse.DroppedEvents())
}

func serveMetrics(addr string, sess *session.Session) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler(sess.Registry))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("metrics_server_started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics_server_error", "error", err)
		}
	}()
	return srv
}

func runTUI(sess *session.Session, refresh time.Duration, sigChan <-chan os.Signal) {
	slog.Info("starting_tui")
	model := tui.NewModel(sess.Pulse, refresh)
	p := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case sig := <-sigChan:
		slog.Info("shutdown_signal_received", "signal", sig.String())
		p.Quit()
		<-done
	case err := <-done:
		if err != nil {
			slog.Error("tui_error", "error", err)
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		}
	}
}

func runHeadless(sess *session.Session, sigChan <-chan os.Signal) {
	if err := sess.Start(); err != nil {
		slog.Error("failed to start session", "error", err)
		return
	}

	events := sess.Pulse.Events()
	for {
		select {
		case sig := <-sigChan:
			slog.Info("shutdown_signal_received", "signal", sig.String())
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			for _, pair := range ev.Pairs {
				slog.Info("pair_received",
					"seq", ev.Seq,
					"id", pair.ID,
					"symbol", pair.Token.Symbol,
					"category", pair.Category,
					"market_cap", pair.Metrics.MarketCap,
				)
			}
		}
	}
}

// setupLogger creates a structured logger with the specified level.
// Format: 2025-01-04 14:32:01 [INFO]  message key=value
func setupLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006-01-02 15:04:05"))
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
