package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/andys/dataforge/config"
	"github.com/andys/dataforge/dataset"
	"github.com/andys/dataforge/logger"
	"github.com/andys/dataforge/stats"
	"github.com/andys/dataforge/utils"
)

// Rows per pool task in the parallel generation path.
const batchSize = 500

func main() {
	cfg := config.Default()
	var column string

	app := &cli.App{
		Name:  "dataforge",
		Usage: "Generate synthetic tabular data and summarize it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Config file path",
				Destination: &cfg.ConfigFile,
			},
			&cli.IntFlag{
				Name:        "rows",
				Aliases:     []string{"n"},
				Usage:       "Number of rows to generate",
				Value:       cfg.Rows,
				EnvVars:     []string{"DATAFORGE_ROWS"},
				Destination: &cfg.Rows,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "Random seed for reproducible output (0 = unseeded)",
				Value:       cfg.Seed,
				EnvVars:     []string{"DATAFORGE_SEED"},
				Destination: &cfg.Seed,
			},
			&cli.StringFlag{
				Name:        "column",
				Usage:       "Numeric column to summarize (id, value or score)",
				Value:       dataset.ColumnValue,
				Destination: &column,
			},
			&cli.IntFlag{
				Name:        "workers",
				Aliases:     []string{"w"},
				Usage:       "Number of workers for bulk generation",
				Value:       cfg.WorkerCount,
				EnvVars:     []string{"DATAFORGE_WORKERS"},
				Destination: &cfg.WorkerCount,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Aliases:     []string{"p"},
				Usage:       "Rows per page when printing the table",
				Value:       cfg.PageSize,
				EnvVars:     []string{"DATAFORGE_PAGE_SIZE"},
				Destination: &cfg.PageSize,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Enable debug logging",
				Value:       false,
				Destination: &cfg.Debug,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Print the generated rows page by page",
				Value:       false,
				Destination: &cfg.Verbose,
			},
		},
		Action: func(c *cli.Context) error {
			// Load configuration
			if cfg.ConfigFile != "" {
				if err := config.LoadConfig(&cfg, cfg.ConfigFile); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			if cfg.Debug {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			lg := logger.New(&cfg)

			gen := dataset.NewGenerator(dataset.Options{
				Seed:       cfg.Seed,
				Categories: cfg.Categories,
				Statuses:   cfg.Statuses,
				ValueMin:   cfg.ValueMin,
				ValueMax:   cfg.ValueMax,
			}, lg)

			var table dataset.Table
			var err error
			if cfg.Rows > batchSize {
				// Start a goroutine to periodically print progress
				done := make(chan struct{})
				go func() {
					ticker := time.NewTicker(300 * time.Millisecond)
					defer ticker.Stop()

					for {
						select {
						case <-done:
							return
						case <-ticker.C:
							progress := gen.GetProgress()
							fmt.Printf("\rProgress: %d/%d rows generated", progress.GeneratedRows.Load(), cfg.Rows)
						}
					}
				}()

				table, err = gen.GenerateParallel(cfg.Rows, batchSize, cfg.WorkerCount)
				close(done)
				fmt.Printf("\r")
			} else {
				table, err = gen.Generate(cfg.Rows)
			}
			if err != nil {
				return fmt.Errorf("failed to generate table: %w", err)
			}

			summary, err := stats.Calculate(table, column)
			if errors.Is(err, stats.ErrEmptyTable) {
				fmt.Println("no data")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to summarize column %q: %w", column, err)
			}

			analyzer := stats.NewAnalyzer(lg)
			analyzer.Load(table)
			groups, err := analyzer.AggregateBy(dataset.ColumnCategory, column, stats.AggMean)
			if err != nil {
				return fmt.Errorf("failed to aggregate by category: %w", err)
			}

			fmt.Printf("Generated %d rows with columns %v\n", len(table), table.Columns())

			fmt.Printf("\nSummary of %q:\n", column)
			for _, metric := range []string{"mean", "median", "std", "min", "max", "q25", "q75"} {
				fmt.Printf("  %-6s %10.4f\n", metric, summary[metric])
			}

			fmt.Printf("\nMean %q per category:\n", column)
			for _, group := range groups {
				fmt.Printf("  %-6s %10.4f\n", group.Key, group.Value)
			}

			if cfg.Verbose {
				page := 1
				for rows := range utils.ChunkSeq(table, cfg.PageSize) {
					fmt.Printf("\nPage %d:\n", page)
					for _, r := range rows {
						fmt.Printf("  %4d  %-2s %8.3f %6.2f %-8s %s\n",
							r.ID, r.Category, r.Value, r.Score, r.Status,
							utils.FormatDate(r.CreatedAt, ""))
					}
					page++
				}
			}

			fmt.Printf("\nAll %d rows processed successfully!\n", len(table))

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
