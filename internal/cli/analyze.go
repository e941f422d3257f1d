package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/config"
	"github.com/dudaka/GReviewSignals/internal/ner"
	"github.com/dudaka/GReviewSignals/internal/output"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// Analyze flags
var (
	flagDataDir       string
	flagOutputDir     string
	flagYear          int
	flagMonth         int
	flagStars         []string
	flagShowReviews   bool
	flagMaxReviews    int
	flagExportReviews string
	flagExportNames   string
	flagEngine        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Filter reviews and count person-name mentions",
	Long:  "Analyze loads reviews from the Takeout archive, applies date and rating filters, runs entity recognition over review comments, and optionally exports the results as CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		crit, err := buildCriteria()
		if err != nil {
			return err
		}
		runAnalyze(cmd.Context(), cfg, crit)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagDataDir != "" {
		m["dataDir"] = flagDataDir
	}
	if flagOutputDir != "" {
		m["outputDir"] = flagOutputDir
	}
	if flagEngine != "" {
		m["engine"] = flagEngine
	}
	if flagMaxReviews > 0 {
		m["maxReviews"] = strconv.Itoa(flagMaxReviews)
	}
	return m
}

func buildCriteria() (analysis.Criteria, error) {
	if flagMonth != 0 && (flagMonth < 1 || flagMonth > 12) {
		return analysis.Criteria{}, fmt.Errorf("month must be between 1 and 12, got %d", flagMonth)
	}

	var ratings []string
	for _, s := range flagStars {
		r := strings.ToUpper(strings.TrimSpace(s))
		if !takeout.ValidStarRating(r) {
			return analysis.Criteria{}, fmt.Errorf("invalid star rating %q (valid: %s)",
				s, strings.Join(takeout.StarRatings, ", "))
		}
		ratings = append(ratings, r)
	}

	return analysis.Criteria{
		Year:    flagYear,
		Month:   flagMonth,
		Ratings: ratings,
	}, nil
}

func runAnalyze(ctx context.Context, cfg config.Config, crit analysis.Criteria) {
	reviews, err := takeout.Load(cfg.DataDir)
	if err != nil {
		if errors.Is(err, takeout.ErrNoTakeoutDir) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Extract the Google Takeout archive into the data directory first.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if len(reviews) == 0 {
		fmt.Fprintln(os.Stdout, "No reviews found.")
		return
	}

	rec, err := ner.New(cfg.Engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	result, err := analysis.Run(ctx, reviews, crit, rec)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Analysis interrupted.")
			exitCode = ExitInterrupt
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	fmt.Fprintf(os.Stdout, "Filtered reviews (%s): %d\n", crit.Describe(), len(result.Reviews))
	if len(result.Reviews) == 0 {
		fmt.Fprintln(os.Stdout, "No reviews match the filter criteria.")
		return
	}

	if flagShowReviews {
		if err := output.Listing(os.Stdout, result.Reviews, cfg.MaxReviews); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
	}

	counts := analysis.SortedCounts(result.NameCounts)
	if err := output.Summary(os.Stdout, counts); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	// Exports run only after aggregation has fully completed.
	if flagExportReviews != "" {
		if err := output.ExportReviews(cfg.OutputDir, flagExportReviews, result.Reviews); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting reviews: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		fmt.Fprintf(os.Stdout, "Exported %d reviews to %s\n", len(result.Reviews), filepath.Join(cfg.OutputDir, flagExportReviews))
	}
	if flagExportNames != "" {
		if err := output.ExportNames(cfg.OutputDir, flagExportNames, counts); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting name analysis: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		fmt.Fprintf(os.Stdout, "Exported %d unique names to %s\n", len(counts), filepath.Join(cfg.OutputDir, flagExportNames))
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory containing the extracted Google Takeout data")
	analyzeCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for output CSV files")
	analyzeCmd.Flags().IntVar(&flagYear, "year", 0, "Filter reviews by year (e.g., 2025)")
	analyzeCmd.Flags().IntVar(&flagMonth, "month", 0, "Filter reviews by month (1-12)")
	analyzeCmd.Flags().StringSliceVar(&flagStars, "stars", nil, "Filter by star ratings (ONE..FIVE, comma-separated or repeated)")
	analyzeCmd.Flags().BoolVar(&flagShowReviews, "show-reviews", false, "Display the filtered reviews")
	analyzeCmd.Flags().IntVar(&flagMaxReviews, "max-reviews", 0, "Maximum number of reviews to display")
	analyzeCmd.Flags().StringVar(&flagExportReviews, "export-reviews", "", "Export filtered reviews to a CSV file in the output directory")
	analyzeCmd.Flags().StringVar(&flagExportNames, "export-names", "", "Export name analysis to a CSV file in the output directory")
	analyzeCmd.Flags().StringVar(&flagEngine, "engine", "", "Entity recognition engine (prose)")
}
