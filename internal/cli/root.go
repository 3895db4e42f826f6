// Package cli wires the resumegen command tree: configuration, logging and
// the render engine are prepared once in the root PersistentPreRunE and
// shared by every subcommand.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/internal/config"
	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/engine"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

// Version is stamped by the release build.
var Version = "dev"

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	engine   *engine.Engine
	prompter Prompter
	stdin    io.Reader
}

// Option customises the root command.
type Option func(*app)

// WithPrompter replaces the survey prompter used by interactive commands.
func WithPrompter(p Prompter) Option {
	return func(a *app) {
		if p != nil {
			a.prompter = p
		}
	}
}

// WithStdin sets the reader used when a command reads a document from "-".
func WithStdin(r io.Reader) Option {
	return func(a *app) {
		if r != nil {
			a.stdin = r
		}
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{prompter: NewSurveyPrompter(), stdin: os.Stdin}
	for _, option := range options {
		if option != nil {
			option(a)
		}
	}

	var (
		configFile string
		envFiles   []string
		logLevel   string
	)

	root := &cobra.Command{
		Use:           "resumegen",
		Short:         "Render résumé documents with the template catalog",
		Long:          "resumegen normalizes résumé documents and renders them with a catalog template as HTML, terminal text or a JSON layout tree.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configFile, envFiles, logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./resumegen.yaml)")
	flags.StringSliceVar(&envFiles, "env-file", []string{".env"}, "env files loaded before the config")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newRenderCommand(a),
		newTemplatesCommand(a),
		newPickCommand(a),
		newDocumentCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, configFile string, envFiles []string, logLevel string) error {
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return err
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	a.engine = engine.New(
		engine.WithCatalog(cat),
		engine.WithThemeSelector(theme.NewCatalogSelector(cat)),
		engine.WithLogger(a.logger),
	)
	if err := a.engine.Err(); err != nil {
		return fmt.Errorf("init engine: %w", err)
	}
	a.logger.Debug("engine ready", "templates", cat.Len(), "catalog", catalogSource(cfg.Catalog.Path))
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return catalog.Load(data, path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
