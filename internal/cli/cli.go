package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/gas-prices/internal/logger"
	"github.com/pfrederiksen/gas-prices/internal/price"
	"github.com/pfrederiksen/gas-prices/internal/scraper"
	"github.com/pfrederiksen/gas-prices/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDebug    bool
	flagFilepath string
	flagFormat   string
	flagDryRun   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gas-prices",
		Short: "Scrape national and state gas prices",
		Long: `Scrape the AAA gas price site and store two CSV snapshots:
national prices per state and county-level prices per state, both
named by one shared UTC collection timestamp.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVarP(&flagFilepath, "filepath", "f", "prices/", "Base filepath to store data")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Fetch and parse without writing files")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	if flagDebug {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
		logger.Debug("debug mode enabled", nil)
	}

	// Validate format
	format := SummaryFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	logger.Info("starting scrape", logger.Fields{
		"url":      scraper.BaseURL,
		"filepath": flagFilepath,
	})
	start := time.Now()

	sc := scraper.New()

	fetchStart := time.Now()
	national, err := sc.FetchNational()
	if err != nil {
		return fmt.Errorf("fetching national prices: %w", err)
	}
	logger.RecordTiming("fetch.national", time.Since(fetchStart))
	logger.Debug("national rows extracted", logger.Fields{
		"rows": len(national),
	})

	counties := sc.FetchCounties(national)

	snap := price.NewSnapshot(national, counties)

	result := &Summary{
		Timestamp: snap.Timestamp,
		States:    len(national),
		Counties:  len(counties),
		DryRun:    flagDryRun,
	}

	store, err := storage.New(flagFilepath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	if flagDryRun {
		result.NationalFile, result.StatesFile = store.Paths(snap.Timestamp)
	} else {
		result.NationalFile, result.StatesFile, err = store.WriteSnapshot(snap)
		if err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	logger.RecordTiming("run.total", time.Since(start))
	logger.Debug("run metrics", logger.MetricsSnapshot())

	if err := WriteSummary(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	logger.Info("scrape finished", logger.Fields{
		"elapsed": time.Since(start).String(),
	})
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
