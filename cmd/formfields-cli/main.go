package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfields/pkg/renderers/tui"
	"github.com/goliatone/go-formfields/pkg/renderers/vanilla"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slog.Any("error", err))
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	slog.DebugContext(ctx, "using configuration", slog.Any("config", cfg))

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			slog.InfoContext(ctx, "aborted")
			os.Exit(130)
		}
		slog.ErrorContext(ctx, "formfields-cli failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	form, err := loadSettings(ctx, cfg.Schema, cfg.Catalog)
	if err != nil {
		return err
	}

	if cfg.Serve != "" {
		renderer, err := newHTMLRenderer(cfg)
		if err != nil {
			return err
		}
		return serve(ctx, cfg.Serve, form, renderer)
	}

	var output []byte
	switch cfg.Renderer {
	case rendererHTML:
		renderer, err := newHTMLRenderer(cfg)
		if err != nil {
			return err
		}
		page, err := form.renderHTML(renderer)
		if err != nil {
			return err
		}
		output = []byte(page)
	default:
		prompter, err := tui.New(tui.WithOutput(os.Stderr))
		if err != nil {
			return err
		}
		if err := form.prompt(ctx, prompter); err != nil {
			return err
		}
		result, err := form.result()
		if err != nil {
			return err
		}
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("formfields-cli: encode result: %w", err)
		}
		output = append(output, '\n')
	}

	if cfg.Output == "" {
		_, err := os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(cfg.Output, output, 0o644); err != nil {
		return fmt.Errorf("formfields-cli: write output: %w", err)
	}
	slog.InfoContext(ctx, "form written", slog.String("path", cfg.Output))
	return nil
}

func newHTMLRenderer(cfg config) (*vanilla.Renderer, error) {
	var opts []vanilla.Option
	if cfg.Theme.Name != "" || len(cfg.Theme.Tokens) > 0 {
		opts = append(opts, vanilla.WithTheme(&theme.RendererConfig{
			Theme:  cfg.Theme.Name,
			Tokens: cfg.Theme.Tokens,
		}))
	}
	return vanilla.New(opts...)
}
