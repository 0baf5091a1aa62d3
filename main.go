package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/mkdocsite/mkdocsite/config"
	"github.com/mkdocsite/mkdocsite/site"
	"github.com/mkdocsite/mkdocsite/templatex"
)

func main() {
	cfgPath := flag.String("config", "", "path to configuration file")
	sourceDir := flag.String("source", "", "markdown source directory (overrides config)")
	outputDir := flag.String("output", "", "output directory (overrides config)")
	baseURL := flag.String("base-url", "", "canonical base URL (overrides config)")
	serveFlag := flag.Bool("serve", false, "serve the built site over HTTP after building")
	listen := flag.String("listen", "127.0.0.1:8080", "listen address used with --serve")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(APP_SIGNATURE)
		return
	}

	cfg, err := loadConfig(*cfgPath, *sourceDir, *outputDir, *baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("starting", "source", cfg.SourceDir, "output", cfg.OutputDir)

	templates, err := templatex.Load(cfg.TemplateDir)
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	svc := site.NewService(cfg, templates, logger)
	if err := svc.Build(); err != nil {
		logger.Error("build", "error", err)
		os.Exit(1)
	}

	if *serveFlag {
		if err := serveOutput(cfg.OutputDir, *listen, logger); err != nil {
			logger.Error("serve", "error", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path, source, output, baseURL string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if source != "" {
		cfg.SourceDir = source
	}
	if output != "" {
		cfg.OutputDir = output
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
