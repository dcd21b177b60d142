package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"travelshell/internal/config"
	"travelshell/internal/logging"
	"travelshell/internal/nav"
	"travelshell/internal/screens"
	"travelshell/internal/telemetry"
	"travelshell/internal/ui"
	"travelshell/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath  string
	verbose     bool
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "travelshell",
		Short: "Terminal travel app with bottom navigation",
		Long: `travelshell hosts Home, Map, Journey, Diary and Profile screens
behind a bottom navigation bar. Exactly one screen is shown at a time.

Keys: 1-5 switch tabs, tab focuses the bar (h/l, enter), SPC opens commands, q quits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "path to config YAML")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	cmd.AddCommand(newTargetsCmd(opts))
	return cmd
}

// newTargetsCmd prints every navigation target and whether a screen is mapped to it.
func newTargetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List navigation targets and their mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			return printTargets(cmd.OutOrStdout(), cfg)
		},
	}
}

func printTargets(w io.Writer, cfg *config.Config) error {
	tb := screens.DefaultTable(cfg)
	loaders := screens.DefaultLoaders(cfg)
	for i, t := range nav.Targets() {
		state := "mapped"
		if _, ok := tb.Lookup(t); !ok {
			state = "UNMAPPED"
		} else if _, ok := loaders[t]; ok {
			state = "mapped (async)"
		}
		if _, err := fmt.Fprintf(w, "%d  %-8s %s %s\n", i+1, t, textutil.PadRight(cfg.Label(labelKey(t)), 8), state); err != nil {
			return err
		}
	}
	return nil
}

func labelKey(t nav.Target) string {
	return strings.ToLower(t.String())
}

func runShell(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("trace export disabled", zap.Error(err))
		tp = &telemetry.Provider{}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	app := ui.NewAppModel(ui.AppOptions{
		Table:   screens.DefaultTable(cfg),
		Loaders: screens.DefaultLoaders(cfg),
		Label:   func(t nav.Target) string { return cfg.Label(labelKey(t)) },
		Logger:  logger,
		Tracer:  tp.Tracer(nav.TracerName),
	})
	defer app.Close()

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen && !opts.noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	logger.Info("starting shell", zap.String("config", opts.configPath), zap.Bool("otlp", tp.Enabled()))
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("shell exited: %w", err)
	}
	return nil
}
