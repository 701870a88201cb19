package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ericfisherdev/certpanel/internal/adapter/driven/catalogfile"
	"github.com/ericfisherdev/certpanel/internal/adapter/driving/tui"
	"github.com/ericfisherdev/certpanel/internal/application"
	"github.com/ericfisherdev/certpanel/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "certbrowse:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal owns stdout; loader warnings go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	catalog, err := catalogfile.New(cfg.CatalogPath, cfg.SiteURL, logger).Load(context.Background())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := application.NewRecordStore(catalog.Records)
	sequencer := application.NewPresentationSequencer(cfg.Animation)
	session := application.NewSession(store, sequencer)

	p := tea.NewProgram(tui.New(session, catalog.Page), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal browser: %w", err)
	}
	return nil
}
