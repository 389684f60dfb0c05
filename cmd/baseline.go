package cmd

import (
	"fmt"

	"toolbank-sync/core/config"
	"toolbank-sync/core/logger"
	"toolbank-sync/feature/baseline"
	"toolbank-sync/feature/matrixify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for baseline subcommands
	fullBaseline bool
	seedFile     string
)

// baselineCmd is the parent command for baseline operations.
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Inspect or seed the persisted SKU baseline",
	Long: `The baseline is the set of SKUs known from previous runs. It decides
whether a product becomes a MERGE (new) or UPDATE (existing) row, so
seeding it before the first run against a populated store prevents the
whole catalog from being re-imported as new.`,
}

// baselineShowCmd prints the current baseline.
var baselineShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the baseline size and last update time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store := baseline.NewStore(cfg.Sync.BaselinePath)
		snap, err := store.Snapshot()
		if err != nil {
			return err
		}

		fmt.Println("=== Baseline ===")
		fmt.Printf("Path: %s\n", cfg.Sync.BaselinePath)
		fmt.Printf("SKUs: %d\n", len(snap.SKUs))
		if snap.Updated != "" {
			fmt.Printf("Updated: %s\n", snap.Updated)
		}
		if fullBaseline {
			for _, sku := range snap.SKUs {
				fmt.Println(sku)
			}
		}
		return nil
	},
}

// baselineSeedCmd merges SKUs from a previous export into the baseline.
var baselineSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the baseline from an existing import file",
	Long: `Reads the Variant SKU column of a Matrixify export and merges it into
the baseline. Existing entries are kept; seeding never removes SKUs.

Example:
  toolbank-sync baseline seed --file products_export.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		store := baseline.NewStore(cfg.Sync.BaselinePath)
		known, err := store.Load()
		if err != nil {
			return err
		}
		before := known.Len()

		skus, err := matrixify.ReadSKUs(seedFile)
		if err != nil {
			return err
		}
		for _, sku := range skus {
			known.Add(sku)
		}

		if err := store.Save(known); err != nil {
			return err
		}

		l.Info("Baseline seeded",
			zap.String("file", seedFile),
			zap.Int("skus_read", len(skus)),
			zap.Int("baseline_before", before),
			zap.Int("baseline_after", known.Len()),
		)
		return nil
	},
}

func init() {
	baselineCmd.AddCommand(baselineShowCmd)
	baselineCmd.AddCommand(baselineSeedCmd)

	baselineShowCmd.Flags().BoolVar(&fullBaseline, "full", false, "Print every SKU in the baseline")
	baselineSeedCmd.Flags().StringVar(&seedFile, "file", "", "Matrixify export to read Variant SKUs from (required)")
	_ = baselineSeedCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(baselineCmd)
}
