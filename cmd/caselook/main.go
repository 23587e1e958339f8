package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"caselook/internal/caselaw"
	"caselook/internal/telemetry"
	"caselook/internal/ui"
)

// defaultEndpoint is the local search proxy this client was built against.
const defaultEndpoint = "http://localhost:8000"

func main() {
	_ = godotenv.Load()

	setupLogging()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "caselook")
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry setup failed: %v\n", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewAppModel(client).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient() (*caselaw.HTTPClient, error) {
	endpoint := os.Getenv("CASELOOK_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	var opts []caselaw.Option
	if param := os.Getenv("CASELOOK_QUERY_PARAM"); param != "" {
		opts = append(opts, caselaw.WithQueryParam(param))
	}
	if raw := os.Getenv("CASELOOK_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CASELOOK_TIMEOUT %q: %w", raw, err)
		}
		opts = append(opts, caselaw.WithTimeout(d))
	}

	return caselaw.NewHTTPClient(endpoint, opts...)
}

// setupLogging routes slog to the file named by CASELOOK_LOG. Writing to
// stderr would corrupt the alt-screen TUI, so without a file configured
// the log is discarded.
func setupLogging() {
	var w io.Writer = io.Discard
	if path := os.Getenv("CASELOOK_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
