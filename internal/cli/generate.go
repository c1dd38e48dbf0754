package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scthornton/analytics-data-gen-parquet/internal/app"
	"github.com/scthornton/analytics-data-gen-parquet/internal/config"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink/chsink"
	"github.com/scthornton/analytics-data-gen-parquet/internal/sink/parquetsink"
	"github.com/scthornton/analytics-data-gen-parquet/pkg/logger"
)

// NewGenerateCommand creates the generate subcommand: run the full pipeline
// and write the three tables.
func NewGenerateCommand() *cobra.Command {
	var (
		users          int
		days           int
		seed           int64
		outDir         string
		topPages       int
		quiet          bool
		clickhouseInit bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the dataset and write the parquet tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			// Flags override file/env config only when set explicitly.
			if cmd.Flags().Changed("users") {
				cfg.Users = users
			}
			if cmd.Flags().Changed("days") {
				cfg.Days = days
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("out") {
				cfg.OutDir = outDir
			}
			if cmd.Flags().Changed("top-pages") {
				cfg.TopPages = topPages
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				return err
			}
			log := logger.Get()

			opts := []app.Option{
				app.WithLogger(log),
				app.WithSeed(cfg.Seed),
				app.WithUsers(cfg.Users),
				app.WithDays(cfg.Days),
				app.WithTopPages(cfg.TopPages),
				app.WithWriter(parquetsink.New(cfg.OutDir)),
			}

			if cfg.ClickHouseAddr != "" {
				store, err := chsink.New(ctx, chsink.Options{
					Addr:     cfg.ClickHouseAddr,
					Database: cfg.ClickHouseDatabase,
					Username: cfg.ClickHouseUsername,
					Password: cfg.ClickHousePassword,
				})
				if err != nil {
					return err
				}
				defer store.Close()
				if clickhouseInit {
					if err := store.EnsureSchema(ctx); err != nil {
						return err
					}
				}
				opts = append(opts, app.WithWriter(store))
			}

			summary, err := app.New(opts...).Run(ctx)
			if err != nil {
				return err
			}
			if !quiet {
				summary.Print(os.Stdout)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&users, "users", 1000, "number of synthetic users")
	cmd.Flags().IntVar(&days, "days", 30, "trailing day window to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for parquet files")
	cmd.Flags().IntVar(&topPages, "top-pages", 10, "page names shown in the summary")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the summary report")
	cmd.Flags().BoolVar(&clickhouseInit, "clickhouse-init", false, "create ClickHouse tables before inserting")

	return cmd
}
