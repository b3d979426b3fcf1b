package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const (
	rendererTUI  = "tui"
	rendererHTML = "html"
)

type config struct {
	Renderer string      `env:"RENDERER" envDefault:"tui"`
	Output   string      `env:"OUTPUT"`
	Schema   string      `env:"SCHEMA"`
	Catalog  string      `env:"CATALOG"`
	Serve    string      `env:"SERVE"`
	LogLevel slog.Level  `env:"LOG_LEVEL" envDefault:"INFO"`
	Theme    themeConfig `envPrefix:"THEME_"`
}

type themeConfig struct {
	Name   string            `env:"NAME"`
	Tokens map[string]string `env:"TOKENS"`
}

// parseConfig reads FORMFIELDS_* environment variables, then lets flags
// override them.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	cfg, err := env.ParseAsWithOptions[config](env.Options{
		Prefix: "FORMFIELDS_",
	})
	if err != nil {
		return config{}, fmt.Errorf("formfields-cli: parse env: %w", err)
	}

	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use (tui|html)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (stdout if empty)")
	fs.StringVar(&cfg.Schema, "schema", cfg.Schema, "OpenAPI document with a Settings schema (embedded sample if empty)")
	fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "YAML region catalog (embedded sample if empty)")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "serve the HTML form and the UTC offsets API on this address")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch cfg.Renderer {
	case rendererTUI, rendererHTML:
	default:
		return config{}, fmt.Errorf("formfields-cli: unknown renderer %q", cfg.Renderer)
	}
	return cfg, nil
}
