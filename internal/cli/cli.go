package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"counterscrape/internal/config"
	"counterscrape/internal/logger"
	"counterscrape/internal/match"
	"counterscrape/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagDate    string
	flagTeam    string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counterscrape",
		Short: "Show a day's CS:GO match results from HLTV.org",
		Long: `Fetches the HLTV.org results listing and prints the matches played
on a given day as aligned text or JSON. Best-of-N series are resolved to
the maps actually played via the match-detail page.`,
		RunE:          runResults,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagDate, "date", "", "Results date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&flagTeam, "team", "", "Only show matches involving this team (fuzzy match)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runResults is the main command logic
func runResults(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	refDate := time.Now()
	if flagDate != "" {
		refDate, err = time.ParseInLocation("2006-01-02", flagDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", flagDate)
		}
	}

	sc := scraper.New(scraper.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})

	logger.Debug("fetching results", logger.Fields{
		"base_url": cfg.BaseURL,
		"date":     match.DayString(refDate),
	})

	results, err := sc.FetchResults(refDate)
	if err != nil {
		return fmt.Errorf("fetching results: %w", err)
	}

	logger.Debug("fetched results", logger.Fields{"count": results.Len()})

	if flagTeam != "" {
		results = filterByTeam(results, flagTeam)
	}

	return WriteOutput(os.Stdout, results, refDate, format)
}

// filterByTeam keeps matches where either team fuzzily matches the query,
// ignoring case and diacritics.
func filterByTeam(results *match.Results, team string) *match.Results {
	filtered := match.NewResults()
	for _, m := range results.Matches() {
		if fuzzy.MatchNormalizedFold(team, m.TeamOne) || fuzzy.MatchNormalizedFold(team, m.TeamTwo) {
			filtered.Add(m)
		}
	}
	return filtered
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
