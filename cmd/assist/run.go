package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/generation"
	"codeberg.org/branchadmin/server/internal/logger"
	"codeberg.org/branchadmin/server/internal/tui"
	"github.com/charmbracelet/x/term"
)

var errNoTerminal = errors.New("assist needs an interactive terminal")

func run(ctx context.Context, mode tui.Mode, path string) error {
	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	// log lines would corrupt the screen
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // G304: operator-chosen path
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	logger.SetOutput(f)

	selectors, err := config.LoadSelectors(selectorsPath)
	if err != nil {
		return err
	}

	client, err := tui.NewPageClient(baseURL)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := client.Load(ctx, path)
	if err != nil {
		return err
	}

	endpoint := selectors.Reply.Endpoint
	if mode == tui.ModeMailing {
		endpoint = selectors.Mailing.Endpoint
	}

	generator := generation.NewClient(
		generation.WithHTTPClient(client.HTTPClient()),
		generation.WithAuthHeader(selectors.AuthTokenHeader),
		generation.WithFallbackMessage(selectors.FallbackMessage),
	)

	model, err := tui.NewModel(tui.Options{
		Mode:        mode,
		Document:    doc,
		Selectors:   selectors,
		Endpoint:    client.URL(endpoint),
		Generator:   generator,
		RejectStale: rejectStale,
	})
	if err != nil {
		return err
	}

	logger.Info("assist session started", "mode", mode.String(), "page", client.URL(path))

	if err := tui.Run(model); err != nil {
		return fmt.Errorf("failed to run assistant: %w", err)
	}

	if printResult {
		fmt.Println(model.Value())
	}

	return nil
}
