package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vcrini/lazypokemon/internal/observability"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
	"github.com/vcrini/lazypokemon/internal/report"
)

const compareConcurrency = 4

func newReportCmd(root *rootFlags) *cobra.Command {
	var (
		query   string
		number  int
		page    int
		compare []string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every view as a document and exit",
		Long: `Fetch the Pokémon once and print the overview, forms, game indices,
held items, moves and stats sections with the same filters applied to each.

Examples:
  lazypokemon report --pokemon pikachu
  lazypokemon report --pokemon bulbasaur --query vine
  lazypokemon report --number 153 --page 2
  lazypokemon report --pokemon 1 --compare 4,7 --query blaze`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			logger, err := observability.NewLogger("lazypokemon", cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			client := pokeapi.NewClient(cfg.Endpoint, cfg.Timeout, logger)
			res := pokeapi.NewLoader(client, cfg.Pokemon).Load(ctx)
			if res.Status != pokeapi.Ready {
				return errors.New(res.Message)
			}

			opts := report.Options{Query: query, Page: page, PageSize: cfg.PageSize}
			if len(compare) > 0 {
				others, err := pokeapi.FetchAll(ctx, client, compare, compareConcurrency)
				if err != nil {
					return err
				}
				opts.Others = others
			}
			if cmd.Flags().Changed("number") {
				opts.Number = &number
			}
			logger.With("report").Debugf("report for %s query=%q page=%d", cfg.Pokemon, query, page)
			return report.Write(cmd.OutOrStdout(), res.Record, opts)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive substring filter for every section")
	cmd.Flags().IntVarP(&number, "number", "n", 0, "Exact form name length or game index")
	cmd.Flags().IntVar(&page, "page", 1, "Moves page")
	cmd.Flags().StringSliceVar(&compare, "compare", nil, "More Pokémon to list in the overview section")
	return cmd
}
