package cli

import (
	"fmt"
	"strings"

	"photolicense-cli/internal/config"
	"photolicense-cli/internal/format"
	"photolicense-cli/internal/logger"
	"photolicense-cli/internal/store"
	"photolicense-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "photolicense",
		Short:        "Track photo licenses in a terminal UI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  photolicense

  # Check the status a license would get for an expiry date
  photolicense status --expiry 2026-12-31

  # Shortcut for the same check
  photolicense 2026-12-31
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		if !cmd.Flags().Changed("format") {
			app.Format = cfg.Format
		}
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format (json|edn); defaults to PHOTOLICENSE_FORMAT")

	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newSampleCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg := app.cfg
	if cfg == nil {
		cfg = &config.Config{SeedSample: true}
	}
	log, closer, err := logger.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	col := store.New()
	if cfg.SeedSample {
		store.Seed(col)
	}
	log.Info().Int("licenses", col.Len()).Msg("session started")
	err = tui.Run(tui.Options{
		Collection: col,
		Logger:     log,
		Glyphs:     cfg.Glyphs,
		Theme:      cfg.Theme,
	})
	if err != nil {
		log.Error().Err(err).Msg("tui exited")
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info().Int("licenses", col.Len()).Msg("session ended")
	return nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
