package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrini/lazypokemon/internal/config"
	"github.com/vcrini/lazypokemon/internal/observability"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
	"github.com/vcrini/lazypokemon/internal/ui"
)

type rootFlags struct {
	configPath string
	pokemon    string
	endpoint   string
	timeout    time.Duration
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootFlags{})
}

func buildRootCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lazypokemon",
		Short: "Browse one Pokémon from PokeAPI in the terminal",
		Long: `lazypokemon fetches a single Pokémon from PokeAPI and lets you filter its
abilities, forms, game indices, held items, moves and stats.

Run without arguments to start the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger("lazypokemon", cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client := pokeapi.NewClient(cfg.Endpoint, cfg.Timeout, logger)
			return ui.Run(ctx, ui.Options{
				Loader:   pokeapi.NewLoader(client, cfg.Pokemon),
				Pokemon:  cfg.Pokemon,
				Debounce: cfg.Debounce,
				PageSize: cfg.PageSize,
				Logger:   logger,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", config.DefaultConfigFile, "YAML config file (missing file is ignored)")
	cmd.PersistentFlags().StringVarP(&f.pokemon, "pokemon", "p", config.DefaultPokemon, "Pokémon name or id (or set POKEMON_ID env)")
	cmd.PersistentFlags().StringVar(&f.endpoint, "endpoint", config.DefaultEndpoint, "PokeAPI pokemon endpoint (or set POKEAPI_ENDPOINT env)")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "Fetch timeout")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.logFile, "log-file", config.DefaultLogFile, "Log file, empty disables logging (or set LOG_FILE env)")

	cmd.AddCommand(newReportCmd(f))
	return cmd
}

// loadConfig layers flags the user actually set over file and environment.
func loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("pokemon") {
		cfg.Pokemon = f.pokemon
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
